package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// acquireTimeout bounds a single position request.
const acquireTimeout = 10 * time.Second

// IPProvider resolves an approximate position fix from an ip-api.com
// compatible endpoint. Accuracy of IP geolocation is city-level, so the
// reported accuracy radius is deliberately coarse.
type IPProvider struct {
	baseURL string
	client  *http.Client
}

// NewIPProvider creates a provider against the given base URL,
// e.g. "http://ip-api.com".
func NewIPProvider(baseURL string, client *http.Client) *IPProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &IPProvider{baseURL: baseURL, client: client}
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ipGeolocationAccuracyMeters is the assumed radius of an IP-derived fix.
const ipGeolocationAccuracyMeters = 5000

// CurrentPosition requests a single fix with a 10-second deadline.
func (p *IPProvider) CurrentPosition(ctx context.Context) (Fix, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/json", nil)
	if err != nil {
		return Fix{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Fix{}, ErrTimeout
		}
		return Fix{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return Fix{}, fmt.Errorf("%w: status %d", ErrPermissionDenied, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Fix{}, fmt.Errorf("%w: status %d", ErrPositionUnavailable, resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Fix{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	if body.Status != "success" {
		return Fix{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, body.Message)
	}

	return Fix{
		Lat:      body.Lat,
		Lng:      body.Lon,
		Accuracy: ipGeolocationAccuracyMeters,
	}, nil
}
