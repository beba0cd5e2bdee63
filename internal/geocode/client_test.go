package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "fishplants-test/1.0 (test@example.com)", 5*time.Second, 100, zap.NewNop())
}

func TestLookup_Found(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotAgent string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"38.9333","lon":"-120.0833","display_name":"Lake Tahoe"}]`))
	}))
	defer upstream.Close()

	c := newTestClient(upstream.URL)
	p, found, err := c.Lookup(context.Background(), "Lake Tahoe", "El Dorado")

	require.NoError(t, err)
	require.True(t, found)
	require.InDelta(t, 38.9333, p.Lat, 0.0001)
	require.InDelta(t, -120.0833, p.Lon, 0.0001)

	require.Equal(t, "Lake Tahoe, El Dorado County, California", gotQuery.Get("q"))
	require.Equal(t, "json", gotQuery.Get("format"))
	require.Equal(t, "1", gotQuery.Get("limit"))
	require.Equal(t, "fishplants-test/1.0 (test@example.com)", gotAgent)
}

func TestLookup_EmptyResultIsMissNotError(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	_, found, err := newTestClient(upstream.URL).Lookup(context.Background(), "Nowhere Pond", "Inyo")
	require.NoError(t, err)
	require.False(t, found)
}

func TestLookup_ServerError(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	_, found, err := newTestClient(upstream.URL).Lookup(context.Background(), "Lake Tahoe", "El Dorado")
	require.Error(t, err)
	require.False(t, found)
}

func TestLookup_MalformedResponse(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer upstream.Close()

	_, found, err := newTestClient(upstream.URL).Lookup(context.Background(), "Lake Tahoe", "El Dorado")
	require.Error(t, err)
	require.False(t, found)
}

func TestLookup_MalformedCoordinates(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"north-ish","lon":"-120"}]`))
	}))
	defer upstream.Close()

	_, found, err := newTestClient(upstream.URL).Lookup(context.Background(), "Lake Tahoe", "El Dorado")
	require.Error(t, err)
	require.False(t, found)
}

func TestLookup_Unreachable(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close() // connection refused from here on

	_, found, err := newTestClient(upstream.URL).Lookup(context.Background(), "Lake Tahoe", "El Dorado")
	require.Error(t, err)
	require.False(t, found)
}
