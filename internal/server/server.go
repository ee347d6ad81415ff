// Package server exposes the diagram pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness
//	GET  /api/v1/kinds            registered diagram kinds
//	POST /api/v1/diagrams/{kind}  render the aggregate in the request body
//	GET  /metrics                 Prometheus metrics, when configured
//
// The diagram endpoint reads a JSON or YAML aggregate (or a kind envelope)
// and answers with JSON by default. Query parameters mirror the render
// command's flags: direction, anchors, include, exclude, format and refresh.
// A diagram with nothing to draw is answered with 204 No Content.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/odpi/mermaidgraph/pkg/config"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Config configures a Server.
type Config struct {
	config.Server

	// Render supplies defaults for options a request leaves unset.
	Render config.Render

	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
}

// Server is the HTTP front end of a pipeline.Runner.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	logger   *log.Logger
	validate *validator.Validate
	router   chi.Router
}

// New creates a server. The runner is shared across requests.
func New(cfg Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	def := config.Default().Server
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}

	s := &Server{
		cfg:      cfg,
		runner:   runner,
		logger:   logger,
		validate: newValidator(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/kinds", s.handleKinds)
		r.Post("/diagrams/{kind}", s.handleDiagram)
	})
	return r
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
