// Package geocode resolves (water body, county) pairs to coordinates
// via the Nominatim search API, with permanent in-memory memoization of
// both hits and misses.
package geocode

import "context"

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a water body within a California county. The
// boolean reports whether a coordinate was found; lookups that fail for
// any reason report false rather than an error, since every miss
// cascades to a static fallback tier.
type Geocoder interface {
	Geocode(ctx context.Context, water, county string) (Point, bool)
}
