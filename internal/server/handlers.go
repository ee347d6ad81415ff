package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// Response formats beyond the pipeline's own.
const (
	formatJSON = "json"
	formatText = "text"
)

var contentTypes = map[string]string{
	formatJSON:              "application/json",
	formatText:              "text/plain; charset=utf-8",
	pipeline.FormatMermaid:  "text/plain; charset=utf-8",
	pipeline.FormatMarkdown: "text/markdown; charset=utf-8",
	pipeline.FormatDOT:      "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:      "image/svg+xml",
	pipeline.FormatPNG:      "image/png",
	pipeline.FormatPDF:      "application/pdf",
}

type kindInfo struct {
	Name        string `json:"name"`
	Aggregate   string `json:"aggregate"`
	Description string `json:"description"`
}

type diagramResponse struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Diagram       string `json:"diagram"`
	Nodes         int    `json:"nodes"`
	Edges         int    `json:"edges"`
	Cached        bool   `json:"cached"`
	AggregateHash string `json:"aggregateHash"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lo.Map(builder.Kinds(), func(k builder.Kind, _ int) kindInfo {
		return kindInfo{Name: k.Name, Aggregate: k.Aggregate, Description: k.Description}
	}))
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if _, err := builder.Lookup(kind); err != nil {
		s.writeError(w, r, err)
		return
	}

	q, err := s.parseQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := catalog.ParseDocument(body, documentFormat(r.Header.Get("Content-Type")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if doc.Kind != "" && doc.Kind != kind {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
			"document kind %q does not match %q", doc.Kind, kind))
		return
	}

	opts := s.options(kind, q)
	if err := opts.UseDocument(doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if res.Empty {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch q.Format {
	case formatJSON:
		writeJSON(w, http.StatusOK, diagramResponse{
			Kind:          res.Kind,
			Title:         res.Title,
			Diagram:       res.Diagram,
			Nodes:         res.Stats.NodeCount,
			Edges:         res.Stats.EdgeCount,
			Cached:        res.CacheInfo.DiagramHit,
			AggregateHash: res.AggregateHash,
		})
	case formatText:
		writeBody(w, contentTypes[formatText], []byte(res.Diagram))
	default:
		writeBody(w, contentTypes[q.Format], res.Artifacts[q.Format])
	}
}

// options merges the query over the configured render defaults.
func (s *Server) options(kind string, q diagramQuery) pipeline.Options {
	def := s.cfg.Render
	opts := pipeline.Options{
		Kind:      kind,
		Direction: lo.CoalesceOrEmpty(q.Direction, def.Direction),
		Anchors:   lo.CoalesceOrEmpty(q.Anchors, def.Anchors),
		Include:   lo.CoalesceSliceOrEmpty(q.Include, def.Include),
		Exclude:   lo.CoalesceSliceOrEmpty(q.Exclude, def.Exclude),
		Detailed:  q.Detailed || def.Detailed,
		Refresh:   q.Refresh,
	}
	switch q.Format {
	case formatJSON, formatText:
		opts.Formats = []string{pipeline.FormatMermaid}
	default:
		opts.Formats = []string{q.Format}
	}
	return opts
}

// documentFormat picks the aggregate syntax from the request content type.
func documentFormat(contentType string) string {
	mt, _, _ := mime.ParseMediaType(contentType)
	if strings.Contains(mt, "yaml") {
		return catalog.FormatYAML
	}
	return catalog.FormatJSON
}

type diagramQuery struct {
	Direction string   `query:"direction" validate:"omitempty,oneof=TD TB LR RL td tb lr rl"`
	Anchors   string   `query:"anchors" validate:"omitempty,oneof=none existing all"`
	Include   []string `query:"include" validate:"max=32,dive,required,max=128"`
	Exclude   []string `query:"exclude" validate:"max=32,dive,required,max=128"`
	Format    string   `query:"format" validate:"required,format"`
	Detailed  bool     `query:"detailed"`
	Refresh   bool     `query:"refresh"`
}

func (s *Server) parseQuery(r *http.Request) (diagramQuery, error) {
	v := r.URL.Query()
	q := diagramQuery{
		Direction: v.Get("direction"),
		Anchors:   strings.ToLower(v.Get("anchors")),
		Include:   catalog.SplitPatterns(v["include"]...),
		Exclude:   catalog.SplitPatterns(v["exclude"]...),
		Format:    lo.CoalesceOrEmpty(strings.ToLower(v.Get("format")), formatJSON),
	}

	for name, dst := range map[string]*bool{"detailed": &q.Detailed, "refresh": &q.Refresh} {
		raw := v.Get(name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, errors.New(errors.ErrCodeInvalidInput, "%s: invalid boolean %q", name, raw)
		}
		*dst = b
	}

	if err := s.validate.StructCtx(r.Context(), q); err != nil {
		return q, validationError(err)
	}
	return q, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypes[formatJSON])
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeBody(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
