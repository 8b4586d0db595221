// Package geocode provides free-text address lookup for the restroom
// creation form.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

// minQueryLength is the shortest query worth sending to the lookup service.
const minQueryLength = 3

const suggestionLimit = 5

// Suggestion is a ranked address match.
type Suggestion struct {
	Label    string            `json:"label"`
	Position restroom.Position `json:"position"`
}

// NominatimClient searches a Nominatim-compatible endpoint, restricted to a
// single country.
type NominatimClient struct {
	baseURL     string
	countryCode string
	client      *http.Client
}

// NewNominatimClient creates a client against the given base URL, e.g.
// "https://nominatim.openstreetmap.org", restricted to countryCode ("ph").
func NewNominatimClient(baseURL, countryCode string, client *http.Client) *NominatimClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &NominatimClient{baseURL: baseURL, countryCode: countryCode, client: client}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns ranked suggestions for the query. Queries shorter than
// three characters return no suggestions without calling the service.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]Suggestion, error) {
	if len(query) < minQueryLength {
		return []Suggestion{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("countrycodes", c.countryCode)
	params.Set("limit", strconv.Itoa(suggestionLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build address lookup request: %w", err)
	}
	req.Header.Set("User-Agent", "TheNearestThrone/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("address lookup failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("address lookup returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode address lookup response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Label:    r.DisplayName,
			Position: restroom.Position{Lat: lat, Lng: lon},
		})
	}
	return suggestions, nil
}
