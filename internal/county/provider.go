// Package county provides the county list for the selection view and
// the static county-seat coordinate fallback.
package county

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jbrasil/fishplants/internal/observability"
)

// CellSource yields the raw county-column texts scraped from the
// schedule page.
type CellSource interface {
	CountyCells(ctx context.Context) ([]string, error)
}

// Provider serves the county list, refreshed from the source page at
// most once per TTL and backed by a static fallback when the page is
// unreachable or unparseable.
type Provider struct {
	source  CellSource
	ttl     time.Duration
	clock   clockwork.Clock
	logger  *zap.Logger
	metrics *observability.Metrics

	mu        sync.Mutex
	cached    []string
	fetchedAt time.Time
}

// NewProvider wires a Provider. A nil clock falls back to real time.
func NewProvider(source CellSource, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *zap.Logger) *Provider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Provider{source: source, ttl: ttl, clock: clock, metrics: metrics, logger: logger}
}

// Counties returns the sorted distinct county names found on the source
// page, or the static fallback list on any failure. Callers always
// receive a usable list; failures never propagate. A failed refresh
// leaves the existing cache untouched.
func (p *Provider) Counties(ctx context.Context) []string {
	p.mu.Lock()
	if p.cached != nil && p.clock.Since(p.fetchedAt) < p.ttl {
		list := p.cached
		p.mu.Unlock()
		p.metrics.CountyListTotal.WithLabelValues("cached").Inc()
		return list
	}
	p.mu.Unlock()

	// The lock is not held across the fetch; concurrent first calls may
	// each refresh, which is harmless since refreshed lists are
	// interchangeable.
	cells, err := p.source.CountyCells(ctx)
	if err != nil || len(cells) == 0 {
		p.logger.Warn("county list refresh failed, using fallback", zap.Error(err))
		p.metrics.CountyListTotal.WithLabelValues("fallback").Inc()
		return Fallback()
	}

	list := normalize(cells)
	p.mu.Lock()
	p.cached = list
	p.fetchedAt = p.clock.Now()
	p.mu.Unlock()
	p.metrics.CountyListTotal.WithLabelValues("refreshed").Inc()
	return list
}

// normalize trims, title-cases, and deduplicates raw county cell texts
// into a sorted list.
func normalize(cells []string) []string {
	caser := cases.Title(language.AmericanEnglish)
	set := make(map[string]struct{}, len(cells))
	for _, cell := range cells {
		name := caser.String(strings.ToLower(strings.TrimSpace(cell)))
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	list := make([]string, 0, len(set))
	for name := range set {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
