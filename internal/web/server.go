// Package web exposes the HTML interface: county selection, per-county
// results, and the single-pin map view.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/geocode"
	"github.com/jbrasil/fishplants/internal/observability"
	"github.com/jbrasil/fishplants/internal/plants"
)

//go:embed templates/*.html
var templateFS embed.FS

// ScheduleSource resolves per-county schedules. Satisfied by
// *scraper.Scraper; tests substitute a stub.
type ScheduleSource interface {
	ForCounty(ctx context.Context, countyQuery string) (plants.Schedule, error)
	Today() time.Time
}

// CountySource serves the selectable county list.
type CountySource interface {
	Counties(ctx context.Context) []string
}

// Server wires HTTP handlers to the scraper, county provider, and
// geocoder.
type Server struct {
	router    chi.Router
	counties  CountySource
	schedules ScheduleSource
	geocoder  geocode.Geocoder
	tmpl      *template.Template
	logger    *zap.Logger
}

// NewServer constructs a Server with middleware and routes. The
// registry backs the /metrics endpoint.
func NewServer(
	counties CountySource,
	schedules ScheduleSource,
	geocoder geocode.Geocoder,
	metrics *observability.Metrics,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	s := &Server{
		counties:  counties,
		schedules: schedules,
		geocoder:  geocoder,
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(timeoutMiddleware(60 * time.Second))
	r.Use(metrics.Middleware)

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/", s.home)
	r.Get("/results", s.results)
	r.Get("/map/{county}/{water}", s.mapView)

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// The service degrades to static fallbacks when upstreams are down,
	// so readiness does not probe them.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("write JSON failed", zap.Error(err))
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("error", rec))
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type requestIDKey struct{}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
