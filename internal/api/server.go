// Package api implements the jyotish HTTP API.
//
// The API is a thin shell over [chart.Compute]: it accepts ephemeris
// inputs as JSON, caches computed charts by input hash and optionally
// persists them for later retrieval by ID.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rsharan/jyotish/pkg/cache"
	"github.com/rsharan/jyotish/pkg/store"
)

// Server holds the API's shared state.
type Server struct {
	cache  cache.Cache
	keyer  cache.Keyer
	store  store.Store
	ttl    time.Duration
	logger *log.Logger
}

// Options configures a Server. A nil Cache disables caching and a nil
// Store disables persistence (POST ?save=1 then fails with 501).
type Options struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Store    store.Store
	CacheTTL time.Duration
	Logger   *log.Logger
}

// NewServer assembles the API server.
func NewServer(opts Options) *Server {
	s := &Server{
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		store:  opts.Store,
		ttl:    opts.CacheTTL,
		logger: opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/charts", s.handleComputeChart)
		r.Get("/charts", s.handleListCharts)
		r.Get("/charts/{id}", s.handleGetChart)
		r.Get("/charts/{id}/aspects.{format}", s.handleAspectGraph)
	})

	return r
}

// logRequests logs one line per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
