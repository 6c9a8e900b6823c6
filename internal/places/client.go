// Package places contains the HTTP client for the external places search API
// and the cost-estimation heuristic applied to its category labels.
package places

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

// CategoryAttractions is the upstream category filter for tourist
// attractions, used by both activity search and the itinerary generator.
const CategoryAttractions = "16000"

// Client searches a Foursquare-style places API.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	http       *http.Client
}

// NewClient constructs a places client. apiVersion is sent verbatim as the
// X-Places-Api-Version header on every request.
func NewClient(baseURL, apiKey, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiVersion: apiVersion,
		http:       &http.Client{Timeout: timeout},
	}
}

// searchResponse mirrors the upstream search payload.
type searchResponse struct {
	Results []struct {
		FsqPlaceID string `json:"fsq_place_id"`
		Name       string `json:"name"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Search lists up to limit points of interest near a city, filtered by the
// given upstream category id. Category is reduced to the name of each
// place's primary (first) category; places without categories get "".
func (c *Client) Search(ctx context.Context, near, categories string, limit int) ([]domain.PointOfInterest, error) {
	params := url.Values{}
	params.Set("near", near)
	params.Set("categories", categories)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places.Client.Search: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Places-Api-Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places.Client.Search: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places.Client.Search: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places.Client.Search: decode: %w: %v", domain.ErrUpstream, err)
	}

	pois := make([]domain.PointOfInterest, 0, len(body.Results))
	for _, r := range body.Results {
		category := ""
		if len(r.Categories) > 0 {
			category = r.Categories[0].Name
		}
		pois = append(pois, domain.PointOfInterest{
			PlaceID:   r.FsqPlaceID,
			Name:      r.Name,
			Category:  category,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return pois, nil
}
