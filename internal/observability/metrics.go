// Package observability exposes the service's Prometheus collectors and
// the HTTP metrics middleware.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the scrape, county-list,
// geocode, and HTTP surfaces.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, route, code
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	ScrapeTotal    *prometheus.CounterVec // labels: outcome={success,fetch_error,parse_error}
	ScrapeDuration prometheus.Histogram

	CountyListTotal *prometheus.CounterVec // labels: outcome={cached,refreshed,fallback}

	GeocodeRequests *prometheus.CounterVec // labels: outcome={found,miss,error}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates all collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishplants",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, labeled by method, route, and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fishplants",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, labeled by method and route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, []string{"method", "route"}),
		ScrapeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishplants",
			Name:      "scrape_total",
			Help:      "Schedule page scrapes, labeled by outcome.",
		}, []string{"outcome"}),
		ScrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fishplants",
			Name:      "scrape_duration_seconds",
			Help:      "Duration of a schedule page fetch and parse.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		CountyListTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishplants",
			Name:      "county_list_total",
			Help:      "County list requests, labeled by how the list was produced.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishplants",
			Name:      "geocode_requests_total",
			Help:      "Upstream geocode lookups, labeled by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishplants",
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups, labeled by hit or miss.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ScrapeTotal,
		m.ScrapeDuration,
		m.CountyListTotal,
		m.GeocodeRequests,
		m.GeocodeCache,
	)
	return m
}

// NewNopMetrics returns metrics backed by a throwaway registry, for
// tests and callers that do not scrape them.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
