package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","lat":14.5995,"lon":120.9842}`))
	}))
	defer srv.Close()

	p := NewIPProvider(srv.URL, srv.Client())
	fix, err := p.CurrentPosition(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 14.5995, fix.Lat)
	assert.Equal(t, 120.9842, fix.Lng)
	assert.Greater(t, fix.Accuracy, 0.0)
}

func TestIPProvider_FailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	p := NewIPProvider(srv.URL, srv.Client())
	_, err := p.CurrentPosition(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestIPProvider_RateLimitedMapsToPermissionDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewIPProvider(srv.URL, srv.Client())
	_, err := p.CurrentPosition(context.Background())

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

type countingProvider struct {
	calls int
	fix   Fix
	err   error
}

func (p *countingProvider) CurrentPosition(ctx context.Context) (Fix, error) {
	p.calls++
	return p.fix, p.err
}

func TestCachedProvider_ServesFreshFixWithoutRefetch(t *testing.T) {
	inner := &countingProvider{fix: Fix{Lat: 1, Lng: 2}}
	cached := NewCachedProvider(inner)

	first, err := cached.CurrentPosition(context.Background())
	require.NoError(t, err)

	second, err := cached.CurrentPosition(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProvider_DoesNotCacheFailures(t *testing.T) {
	inner := &countingProvider{err: ErrPositionUnavailable}
	cached := NewCachedProvider(inner)

	_, err := cached.CurrentPosition(context.Background())
	require.Error(t, err)
	_, err = cached.CurrentPosition(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"permission denied", ErrPermissionDenied, "Location access denied. Please enable location permissions."},
		{"unavailable", ErrPositionUnavailable, "Location information is unavailable."},
		{"timeout", ErrTimeout, "Location request timed out."},
		{"deadline exceeded", context.DeadlineExceeded, "Location request timed out."},
		{"unsupported", ErrUnsupported, "Geolocation is not supported by this environment."},
		{"unknown", errors.New("boom"), "Unable to retrieve your location."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
