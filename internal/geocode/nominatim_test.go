package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestClient(srv *httptest.Server) *NominatimClient {
	return NewNominatimClient(
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithUserAgent("test-agent"),
	)
}

func TestGeocode_Match(t *testing.T) {
	var gotQuery, gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"lat": "39.9526", "lon": "-75.1652", "display_name": "Philadelphia, PA, USA"}]`)
	}))
	defer srv.Close()

	result, err := newTestClient(srv).Geocode(context.Background(), "19103")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.InDelta(t, 39.9526, result.Latitude, 0.0001)
	assert.InDelta(t, -75.1652, result.Longitude, 0.0001)
	assert.Equal(t, "Philadelphia, PA, USA", result.DisplayName)
	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "19103", gotQuery)
	assert.Equal(t, "test-agent", gotUA)
}

func TestGeocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	result, err := newTestClient(srv).Geocode(context.Background(), "zzzzinvalid")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestGeocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestGeocode_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestGeocode_BadCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"lat": "north", "lon": "2.35"}]`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse latitude")
}

func TestGeocode_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Paris")
	require.Error(t, err)
}
