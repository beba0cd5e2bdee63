package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/geocode"
	"github.com/jbrasil/fishplants/internal/observability"
	"github.com/jbrasil/fishplants/internal/plants"
)

type stubCounties struct {
	list []string
}

func (s *stubCounties) Counties(_ context.Context) []string {
	return s.list
}

type stubSchedules struct {
	schedule plants.Schedule
	err      error
	lastQ    string
}

func (s *stubSchedules) ForCounty(_ context.Context, countyQuery string) (plants.Schedule, error) {
	s.lastQ = countyQuery
	return s.schedule, s.err
}

func (s *stubSchedules) Today() time.Time {
	return time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
}

type stubGeocoder struct {
	point Point
	found bool
}

// Point aliases geocode.Point for brevity in fixtures.
type Point = geocode.Point

func (s *stubGeocoder) Geocode(_ context.Context, _, _ string) (Point, bool) {
	return s.point, s.found
}

func newTestServer(counties CountySource, schedules ScheduleSource, geocoder geocode.Geocoder) *Server {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	return NewServer(counties, schedules, geocoder, metrics, registry, zap.NewNop())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHome_ListsCounties(t *testing.T) {
	t.Parallel()

	s := newTestServer(
		&stubCounties{list: []string{"El Dorado", "Fresno"}},
		&stubSchedules{},
		&stubGeocoder{},
	)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "El Dorado")
	require.Contains(t, rec.Body.String(), "Fresno")
}

func TestResults_MissingCountyShowsHomeError(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{list: []string{"Fresno"}}, &stubSchedules{}, &stubGeocoder{})

	rec := get(t, s, "/results")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Please select a county.")
	require.Contains(t, rec.Body.String(), "Fresno") // home page re-rendered
}

func TestResults_ScrapeErrorShowsHomeError(t *testing.T) {
	t.Parallel()

	s := newTestServer(
		&stubCounties{list: []string{"Fresno"}},
		&stubSchedules{err: errors.New("connection timed out")},
		&stubGeocoder{},
	)

	rec := get(t, s, "/results?county=Fresno")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "connection timed out")
}

func TestResults_RendersSchedule(t *testing.T) {
	t.Parallel()

	recent := plants.StockingEvent{
		Water:   "Lake Tahoe",
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Week:    "06/01/2025 - 06/07/2025",
		Species: "Rainbow Trout",
	}
	schedules := &stubSchedules{schedule: plants.Schedule{
		"Lake Tahoe": {Recent: &recent},
	}}
	s := newTestServer(&stubCounties{}, schedules, &stubGeocoder{})

	rec := get(t, s, "/results?county=El+Dorado")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "El Dorado", schedules.lastQ)

	body := rec.Body.String()
	require.Contains(t, body, "Lake Tahoe")
	require.Contains(t, body, "06/01/2025 - 06/07/2025")
	require.Contains(t, body, "Rainbow Trout")
	require.Contains(t, body, "June 05, 2025")
}

func TestResults_EmptySchedule(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{schedule: plants.Schedule{}}, &stubGeocoder{})

	rec := get(t, s, "/results?county=Nonexistent")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No plantings found")
}

func TestMap_GeocoderHit(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{}, &stubGeocoder{
		point: Point{Lat: 38.9333, Lon: -120.0833},
		found: true,
	})

	rec := get(t, s, "/map/El%20Dorado/Lake%20Tahoe")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "38.9333")
	require.Contains(t, body, "Lake Tahoe")
	require.NotContains(t, body, "not found")
}

func TestMap_FallsBackToCountySeat(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{}, &stubGeocoder{found: false})

	rec := get(t, s, "/map/El%20Dorado/"+url.PathEscape("Lake Tahoe"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "38.7296") // Placerville
	require.Contains(t, body, "-120.7985")
	require.Contains(t, body, "showing El Dorado County seat")
}

func TestMap_FallsBackToCaliforniaCenter(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{}, &stubGeocoder{found: false})

	rec := get(t, s, "/map/Atlantis/Lost%20Lake")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "36.7783")
	require.Contains(t, body, "-119.4179")
	require.Contains(t, body, "center of California")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{}, &stubGeocoder{})

	rec := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(&stubCounties{}, &stubSchedules{}, &stubGeocoder{})

	get(t, s, "/") // generate one request metric
	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fishplants_http_requests_total")
}
