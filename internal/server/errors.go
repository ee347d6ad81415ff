package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"requestId,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		f := fl.Field().String()
		return f == formatJSON || f == formatText || pipeline.ValidFormats[f]
	})
	return v
}

// validationError turns validator failures into one INVALID_INPUT error
// naming every offending query parameter.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid query")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fe.Field() + ": failed " + fe.Tag() + "=" + fe.Param()
		} else {
			msgs[i] = fe.Field() + ": failed " + fe.Tag()
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid query: %s", strings.Join(msgs, "; "))
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeInvalidKind:
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case code == errors.ErrCodeNetwork, code == errors.ErrCodeTimeout:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)

	switch {
	case status == http.StatusRequestEntityTooLarge:
		code, msg = errors.ErrCodeInvalidInput, "request body too large"
	case status >= http.StatusInternalServerError:
		s.logger.Error("diagram failed", "id", RequestID(r.Context()), "err", err)
		if code == "" {
			code, msg = errors.ErrCodeInternal, "internal error"
		}
	}

	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}
