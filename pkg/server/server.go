// Package server exposes the scale engine over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	GET  /api/v1/scales         catalog names (plus stored custom names)
//	GET  /api/v1/scales/{name}  one generated scale as an export document
//	POST /api/v1/generate       generate from an inline definition or a name
//
// Every response is JSON. Errors carry the engine's structured codes:
//
//	{"error": {"code": "UNKNOWN_SCALE", "message": "..."}}
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/cache"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/store"
)

// Options wires the server's collaborators. Logger and Cache must be set;
// Store may be nil, which disables custom definitions.
type Options struct {
	Logger *log.Logger
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  *store.Store

	// DefaultLength is the scale length in points used when a request
	// does not specify one.
	DefaultLength float64
	// DefaultAlgorithm names the tick strategy for requests that leave it
	// unset ("legacy" or "modulo").
	DefaultAlgorithm string
	// CacheTTL bounds cached generation lifetimes. Zero caches forever.
	CacheTTL time.Duration
}

// Server owns the router and the generation pipeline behind it.
type Server struct {
	opts   Options
	router chi.Router
}

// New builds a server and mounts its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.DefaultLength <= 0 {
		opts.DefaultLength = 250
	}

	s := &Server{opts: opts}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scales", s.handleListScales)
		r.Get("/scales/{name}", s.handleGetScale)
		r.Post("/generate", s.handleGenerate)
	})
	s.router = r
	return s
}

// Handler returns the mounted router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.opts.Logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
