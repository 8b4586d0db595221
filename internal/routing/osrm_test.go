package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

const routeBody = `{
	"routes": [{
		"geometry": {
			"type": "LineString",
			"coordinates": [[120.9842, 14.5995], [120.9850, 14.5950], [120.9909, 14.5327]]
		},
		"distance": 8230.4,
		"duration": 754.2
	}]
}`

func TestFetchRoute_Success(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(routeBody))
	}))
	defer srv.Close()

	provider := NewOSRMProvider(srv.URL, srv.Client())
	origin := restroom.Position{Lat: 14.5995, Lng: 120.9842}
	dest := restroom.Position{Lat: 14.5327, Lng: 120.9909}

	route, err := provider.FetchRoute(context.Background(), origin, dest)
	require.NoError(t, err)

	// OSRM takes lng,lat pairs in the path.
	assert.Equal(t, "/route/v1/driving/120.9842,14.5995;120.9909,14.5327", gotPath)
	assert.Contains(t, gotQuery, "overview=full")
	assert.Contains(t, gotQuery, "geometries=geojson")

	// Coordinates come back reversed into [lat,lng].
	require.Len(t, route.Coordinates, 3)
	assert.Equal(t, restroom.Position{Lat: 14.5995, Lng: 120.9842}, route.Coordinates[0])
	assert.Equal(t, restroom.Position{Lat: 14.5327, Lng: 120.9909}, route.Coordinates[2])

	assert.Equal(t, "8.2 km", route.Distance)
	assert.Equal(t, "13 min", route.Duration)
}

func TestFetchRoute_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := NewOSRMProvider(srv.URL, srv.Client())
	_, err := provider.FetchRoute(context.Background(),
		restroom.Position{Lat: 1, Lng: 2}, restroom.Position{Lat: 3, Lng: 4})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchRoute_EmptyRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes": []}`))
	}))
	defer srv.Close()

	provider := NewOSRMProvider(srv.URL, srv.Client())
	_, err := provider.FetchRoute(context.Background(),
		restroom.Position{Lat: 1, Lng: 2}, restroom.Position{Lat: 3, Lng: 4})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route found")
}

func TestFetchRoute_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	provider := NewOSRMProvider(srv.URL, srv.Client())
	_, err := provider.FetchRoute(context.Background(),
		restroom.Position{Lat: 1, Lng: 2}, restroom.Position{Lat: 3, Lng: 4})

	require.Error(t, err)
}
