package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

const userAgent = "TheNearestThrone/1.0"

// OSRMProvider fetches driving routes from an OSRM-compatible service.
// The HTTP client's transport defaults govern the request deadline; no
// explicit timeout is applied here.
type OSRMProvider struct {
	baseURL string
	client  *http.Client
}

// NewOSRMProvider creates a provider against the given OSRM base URL,
// e.g. "https://router.project-osrm.org".
func NewOSRMProvider(baseURL string, client *http.Client) *OSRMProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMProvider{baseURL: baseURL, client: client}
}

type osrmRoute struct {
	Geometry geojson.Geometry `json:"geometry"`
	Distance float64          `json:"distance"` // meters
	Duration float64          `json:"duration"` // seconds
}

type osrmResponse struct {
	Routes []osrmRoute `json:"routes"`
}

// FetchRoute requests full GeoJSON geometry for a driving route. OSRM
// speaks [lng,lat]; coordinates are reversed into the catalog's [lat,lng]
// convention before returning.
func (p *OSRMProvider) FetchRoute(ctx context.Context, origin, destination restroom.Position) (*Route, error) {
	url := fmt.Sprintf(
		"%s/route/v1/driving/%s,%s;%s,%s?overview=full&geometries=geojson&steps=true",
		p.baseURL,
		coord(origin.Lng), coord(origin.Lat),
		coord(destination.Lng), coord(destination.Lat),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build route request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("route service returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}
	if len(body.Routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	route := body.Routes[0]
	line, ok := route.Geometry.Geometry().(orb.LineString)
	if !ok || len(line) == 0 {
		return nil, fmt.Errorf("route geometry is empty")
	}

	coords := make([]restroom.Position, len(line))
	for i, pt := range line {
		coords[i] = restroom.Position{Lat: pt.Lat(), Lng: pt.Lon()}
	}

	return &Route{
		Coordinates: coords,
		Distance:    fmt.Sprintf("%.1f km", route.Distance/1000),
		Duration:    fmt.Sprintf("%d min", int(math.Round(route.Duration/60))),
	}, nil
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
