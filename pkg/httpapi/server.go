// Package httpapi exposes the scene pipeline over HTTP.
//
// The server is a thin facade over pipeline.Runner: clients POST a scene
// manifest and receive the laid-out tree rendered in the requested format.
// Requests carry either a raw TOML manifest body or a JSON envelope that
// deserializes into pipeline.Options.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sash/pkg/pipeline"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8474"

	// DefaultMaxBodyBytes caps the accepted manifest size.
	DefaultMaxBodyBytes = 1 << 20

	shutdownTimeout = 5 * time.Second
)

// Config holds server settings.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	Logger       *log.Logger
}

// Server serves layout requests over HTTP.
type Server struct {
	addr    string
	maxBody int64
	logger  *log.Logger
	runner  *pipeline.Runner
}

// NewServer creates a server, applying defaults for unset config fields.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Server{
		addr:    cfg.Addr,
		maxBody: cfg.MaxBodyBytes,
		logger:  cfg.Logger,
		runner:  pipeline.NewRunner(cfg.Logger),
	}
}

// Handler builds the router for the API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", s.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
