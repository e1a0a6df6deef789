// Package server implements the rosgraph HTTP and websocket API.
//
// The server exposes REST endpoints for graph snapshots, per-node and
// per-topic details, laid-out graphs, and a health probe, plus a
// websocket endpoint that pushes graph updates to connected clients
// whenever the polled source changes.
//
// # Endpoints
//
//	GET /api/graph            raw snapshot from the source
//	GET /api/node/{name}      details for a single node (404 if unknown)
//	GET /api/topic/{name}     details for a single topic (404 if unknown)
//	GET /api/layout           positioned graph (?hide_internal=true|false)
//	GET /api/health           liveness probe
//	GET /ws/graph             websocket pushing graph_update messages
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"rosgraph/pkg/layout"
	"rosgraph/pkg/source"
)

// DefaultPollInterval is how often the broadcaster polls the source for
// changes when no interval is configured.
const DefaultPollInterval = 500 * time.Millisecond

// Options configures a Server.
type Options struct {
	Addr           string         // Listen address (default ":8080")
	PollInterval   time.Duration  // Source poll cadence (default DefaultPollInterval)
	AllowedOrigins []string       // CORS origins (default "*")
	HideInternal   bool           // Default for /api/layout filtering
	Layout         layout.Options // Layout tuning for /api/layout
	Logger         *log.Logger    // Structured logger (default log.Default())
}

func (o Options) withDefaults() Options {
	opts := o
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// Server serves the rosgraph API for a single graph source.
type Server struct {
	src    source.Source
	opts   Options
	logger *log.Logger
	hub    *hub
}

// New creates a Server polling src.
func New(src source.Source, opts Options) *Server {
	opts = opts.withDefaults()
	s := &Server{
		src:    src,
		opts:   opts,
		logger: opts.Logger,
	}
	s.hub = newHub(src, opts.PollInterval, opts.Logger)
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api/graph", s.handleGraph)
	r.Get("/api/node/*", s.handleNode)
	r.Get("/api/topic/*", s.handleTopic)
	r.Get("/api/layout", s.handleLayout)
	r.Get("/api/health", s.handleHealth)
	r.Get("/ws/graph", s.hub.handleSocket)

	return r
}

// Run starts the HTTP server and the websocket broadcaster, blocking
// until ctx is cancelled. Shutdown waits up to five seconds for inflight
// requests to drain.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The broadcaster must stop on every exit path, including a listen
	// error, not only when the caller's ctx is cancelled.
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()

	go s.hub.run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.opts.Addr, "source", s.src.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs each request with method, path, status, and duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}
