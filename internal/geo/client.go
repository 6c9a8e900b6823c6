// Package geo contains the HTTP clients for the external geocoding and
// country-lookup APIs. Calls are synchronous and bounded by a single
// timeout; a timeout or non-2xx response surfaces as domain.ErrUpstream.
// No retries, no caching.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// Client resolves free-text place names against a GeoNames-compatible API.
type Client struct {
	baseURL  string
	username string
	http     *http.Client
}

// NewClient constructs a geocoding client.
// baseURL has no trailing slash; username is the API account identifier.
func NewClient(baseURL, username string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		http:     &http.Client{Timeout: timeout},
	}
}

// geoNamesResponse mirrors the upstream search payload. Latitude and
// longitude arrive as strings and are parsed during mapping.
type geoNamesResponse struct {
	GeoNames []struct {
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
		Lat         string `json:"lat"`
		Lng         string `json:"lng"`
		Population  int64  `json:"population"`
	} `json:"geonames"`
}

// SearchCities queries the geocoding API for up to maxRows matches of q.
// Returns a non-nil, possibly empty slice on success.
func (c *Client) SearchCities(ctx context.Context, q string, maxRows int) ([]domain.CityMatch, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("maxRows", strconv.Itoa(maxRows))
	params.Set("username", c.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/searchJSON?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geo.Client.SearchCities: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo.Client.SearchCities: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo.Client.SearchCities: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body geoNamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geo.Client.SearchCities: decode: %w: %v", domain.ErrUpstream, err)
	}

	matches := make([]domain.CityMatch, 0, len(body.GeoNames))
	for _, g := range body.GeoNames {
		lat, _ := strconv.ParseFloat(g.Lat, 64)
		lng, _ := strconv.ParseFloat(g.Lng, 64)
		matches = append(matches, domain.CityMatch{
			City:        g.Name,
			CountryCode: g.CountryCode,
			Latitude:    lat,
			Longitude:   lng,
			Population:  g.Population,
		})
	}
	return matches, nil
}

// ValidateCity resolves a free-text place name to its first geocoding match.
// A city the upstream cannot resolve returns (nil, nil) — absence, not an
// error. Only upstream failures return a non-nil error.
func (c *Client) ValidateCity(ctx context.Context, name string) (*domain.CityMatch, error) {
	matches, err := c.SearchCities(ctx, name, 1)
	if err != nil {
		return nil, fmt.Errorf("geo.Client.ValidateCity: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	m := matches[0]
	return &m, nil
}
