package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ShortQuerySkipsService(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "ph", srv.Client())
	suggestions, err := c.Search(context.Background(), "ay")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
	assert.Equal(t, 0, calls)
}

func TestSearch_ReturnsRankedSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ayala", r.URL.Query().Get("q"))
		assert.Equal(t, "ph", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`[
			{"display_name":"Ayala Avenue, Makati","lat":"14.5547","lon":"121.0244"},
			{"display_name":"Ayala Malls Manila Bay","lat":"14.5327","lon":"120.9909"}
		]`))
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "ph", srv.Client())
	suggestions, err := c.Search(context.Background(), "ayala")
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Ayala Avenue, Makati", suggestions[0].Label)
	assert.Equal(t, 14.5547, suggestions[0].Position.Lat)
	assert.Equal(t, 121.0244, suggestions[0].Position.Lng)
}

func TestSearch_SkipsUnparsableCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"display_name":"Broken","lat":"not-a-number","lon":"121.0"},
			{"display_name":"Good","lat":"14.6","lon":"121.0"}
		]`))
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "ph", srv.Client())
	suggestions, err := c.Search(context.Background(), "manila")
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Good", suggestions[0].Label)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, "ph", srv.Client())
	_, err := c.Search(context.Background(), "manila")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
