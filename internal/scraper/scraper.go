// Package scraper fetches the CDFW fish-planting schedule page and
// turns its table rows into domain events.
package scraper

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/observability"
	"github.com/jbrasil/fishplants/internal/plants"
)

// PageFetcher retrieves a URL's body. Satisfied by *Fetcher; tests
// substitute a stub.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Scraper resolves per-county schedules against the live source page.
type Scraper struct {
	fetcher PageFetcher
	url     string
	clock   clockwork.Clock
	logger  *zap.Logger
	metrics *observability.Metrics
}

// New wires a Scraper. A nil clock falls back to the real clock.
func New(fetcher PageFetcher, url string, clock clockwork.Clock, metrics *observability.Metrics, logger *zap.Logger) *Scraper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scraper{fetcher: fetcher, url: url, clock: clock, metrics: metrics, logger: logger}
}

// ForCounty fetches the schedule page and returns the water-body
// results for one county query. Fetch and missing-table failures are
// returned to the caller; malformed rows are dropped silently.
func (s *Scraper) ForCounty(ctx context.Context, countyQuery string) (plants.Schedule, error) {
	start := time.Now()
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		s.metrics.ScrapeTotal.WithLabelValues("fetch_error").Inc()
		return nil, err
	}

	events, err := parseScheduleTable(body, countyQuery)
	if err != nil {
		s.metrics.ScrapeTotal.WithLabelValues("parse_error").Inc()
		return nil, err
	}
	s.metrics.ScrapeTotal.WithLabelValues("success").Inc()
	s.metrics.ScrapeDuration.Observe(time.Since(start).Seconds())

	schedule := plants.Group(events, s.today())
	s.logger.Debug("schedule scraped",
		zap.String("county", countyQuery),
		zap.Int("events", len(events)),
		zap.Int("waters", len(schedule)),
	)
	return schedule, nil
}

// CountyCells fetches the page and returns the raw county-column texts.
// Used by the county list provider, which owns normalization and
// fallback behavior.
func (s *Scraper) CountyCells(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return countyColumn(body)
}

// Today returns the current calendar date in UTC, the reference point
// for recent/upcoming classification.
func (s *Scraper) Today() time.Time {
	return s.today()
}

func (s *Scraper) today() time.Time {
	now := s.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
