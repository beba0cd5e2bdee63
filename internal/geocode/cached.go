package geocode

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/observability"
)

// Lookuper is the upstream side of the cache. Satisfied by *Client.
type Lookuper interface {
	Lookup(ctx context.Context, water, county string) (Point, bool, error)
}

// Cached memoizes lookups for the process lifetime. Negative results
// (misses, timeouts, malformed responses) are cached too, so a failing
// pair is never retried. The first result written for a key wins.
type Cached struct {
	inner   Lookuper
	logger  *zap.Logger
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	point Point
	found bool
}

// NewCached wraps an upstream lookuper with the process-lifetime cache.
func NewCached(inner Lookuper, metrics *observability.Metrics, logger *zap.Logger) *Cached {
	return &Cached{
		inner:   inner,
		logger:  logger,
		metrics: metrics,
		entries: make(map[string]entry),
	}
}

// Geocode implements Geocoder. Lookup errors degrade to a cached miss;
// the caller falls through to the county-seat tier either way.
func (c *Cached) Geocode(ctx context.Context, water, county string) (Point, bool) {
	key := cacheKey(water, county)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return e.point, e.found
	}
	c.mu.Unlock()
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	// Not held across the upstream call; duplicate concurrent lookups
	// for the same key are possible and resolved first-write-wins.
	point, found, err := c.inner.Lookup(ctx, water, county)
	switch {
	case err != nil:
		c.logger.Warn("geocode lookup failed",
			zap.String("water", water),
			zap.String("county", county),
			zap.Error(err),
		)
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		point, found = Point{}, false
	case !found:
		c.metrics.GeocodeRequests.WithLabelValues("miss").Inc()
	default:
		c.metrics.GeocodeRequests.WithLabelValues("found").Inc()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.point, e.found
	}
	c.entries[key] = entry{point: point, found: found}
	return point, found
}

func cacheKey(water, county string) string {
	return strings.ToLower(water) + "|" + strings.ToLower(county)
}
