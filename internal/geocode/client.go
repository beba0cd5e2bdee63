package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client queries the Nominatim search endpoint. Nominatim's usage
// policy requires an identifying User-Agent and at most one request per
// second, enforced here with a rate limiter on outbound calls.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient builds a Nominatim client. userAgent must identify the
// deployment including a contact address.
func NewClient(baseURL, userAgent string, timeout time.Duration, rps float64, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// Lookup queries for "{water}, {county} County, California" and returns
// the first result's coordinate. A response with no results yields
// (zero, false, nil); transport, status, and decode failures yield an
// error. Callers treat every non-hit the same way, but errors are
// logged separately.
func (c *Client) Lookup(ctx context.Context, water, county string) (Point, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Point{}, false, fmt.Errorf("geocode rate limit: %w", err)
	}

	params := url.Values{
		"q":      {fmt.Sprintf("%s, %s County, California", water, county)},
		"format": {"json"},
		"limit":  {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, false, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Point{}, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, false, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, false, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return Point{}, false, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Point{}, false, fmt.Errorf("malformed coordinates %q,%q", results[0].Lat, results[0].Lon)
	}
	return Point{Lat: lat, Lon: lon}, true, nil
}

// searchResult is the slice element of a Nominatim JSON response;
// coordinates arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
