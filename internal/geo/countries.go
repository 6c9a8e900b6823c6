package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// CountriesClient looks up country metadata by ISO alpha-2 code against a
// restcountries-compatible API.
type CountriesClient struct {
	baseURL string
	http    *http.Client
}

// NewCountriesClient constructs a country-lookup client.
func NewCountriesClient(baseURL string, timeout time.Duration) *CountriesClient {
	return &CountriesClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CountryInfo is the subset of the upstream country record this application uses.
type CountryInfo struct {
	Name   string
	Region string
}

// countryResponse mirrors the upstream alpha-code payload, which is an array
// with a single element.
type countryResponse []struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Region string `json:"region"`
}

// Lookup returns the common name and region for an ISO alpha-2 country code.
func (c *CountriesClient) Lookup(ctx context.Context, code string) (CountryInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/alpha/"+code, nil)
	if err != nil {
		return CountryInfo{}, fmt.Errorf("geo.CountriesClient.Lookup: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return CountryInfo{}, fmt.Errorf("geo.CountriesClient.Lookup: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CountryInfo{}, fmt.Errorf("geo.CountriesClient.Lookup: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body countryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return CountryInfo{}, fmt.Errorf("geo.CountriesClient.Lookup: decode: %w: %v", domain.ErrUpstream, err)
	}
	if len(body) == 0 {
		return CountryInfo{}, fmt.Errorf("geo.CountriesClient.Lookup: %w: empty response for %q", domain.ErrUpstream, code)
	}

	return CountryInfo{Name: body[0].Name.Common, Region: body[0].Region}, nil
}
