// Package fakeapi is an in-memory stand-in for the review analysis API. It
// serves the same routes and JSON shapes so the clients can be exercised in
// tests and offline demos.
package fakeapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Option configures the router.
type Option func(*handler)

// WithAnalyzer replaces the default KeywordAnalyzer.
func WithAnalyzer(a Analyzer) Option {
	return func(h *handler) {
		h.analyzer = a
	}
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *handler) {
		h.now = now
	}
}

// NewRouter returns the API routes mounted under /api with a health check at
// the root.
func NewRouter(logger *slog.Logger, opts ...Option) *chi.Mux {
	h := &handler{
		store:    &memoryStore{},
		analyzer: KeywordAnalyzer{},
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/reviews", h.listReviews)
		r.Post("/analyze-review", h.analyzeReview)
	})

	return r
}

// requestLogger logs each request through slog instead of the standard
// library logger used by middleware.Logger.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
