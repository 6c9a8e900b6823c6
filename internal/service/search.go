package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/geo"
	"github.com/aadarshsenapati/globetrotter/backend/internal/places"
)

// searchCityRows is how many geocoding matches a city search requests.
const searchCityRows = 10

// searchActivityLimit is how many places an activity search requests before
// client-side filtering.
const searchActivityLimit = 15

// CitySearcher is the slice of the geocoding client the search service uses.
type CitySearcher interface {
	SearchCities(ctx context.Context, q string, maxRows int) ([]domain.CityMatch, error)
}

// CountryLookup resolves an ISO alpha-2 code to country metadata.
type CountryLookup interface {
	Lookup(ctx context.Context, code string) (geo.CountryInfo, error)
}

// SearchService implements the public city and activity search endpoints.
// Both endpoints are pure pass-throughs over the upstream APIs with
// client-side filtering; nothing is persisted.
type SearchService struct {
	geo       CitySearcher
	countries CountryLookup
	places    POISearcher
}

// NewSearchService constructs a SearchService.
func NewSearchService(geo CitySearcher, countries CountryLookup, places POISearcher) *SearchService {
	return &SearchService{geo: geo, countries: countries, places: places}
}

// CityResult is one row of a city search, enriched with country metadata.
type CityResult struct {
	City       string
	Country    string
	Region     string
	Latitude   float64
	Longitude  float64
	Population int64
}

// Cities searches the geocoding API for q and enriches each match with its
// country name and region. Matches without a country code are skipped; when
// region is non-empty, matches outside that region are filtered out
// (case-insensitive). One country lookup per match, sequentially — the row
// count is capped at 10.
func (s *SearchService) Cities(ctx context.Context, q, region string) ([]CityResult, error) {
	matches, err := s.geo.SearchCities(ctx, q, searchCityRows)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Cities: %w", err)
	}

	results := make([]CityResult, 0, len(matches))
	for _, m := range matches {
		if m.CountryCode == "" {
			continue
		}

		country, err := s.countries.Lookup(ctx, m.CountryCode)
		if err != nil {
			return nil, fmt.Errorf("service.SearchService.Cities: %w", err)
		}
		if region != "" && country.Region != "" && !strings.EqualFold(country.Region, region) {
			continue
		}

		results = append(results, CityResult{
			City:       m.City,
			Country:    country.Name,
			Region:     country.Region,
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			Population: m.Population,
		})
	}
	return results, nil
}

// ActivityResult is one row of an activity search: a point of interest with
// its estimated cost bucket.
type ActivityResult struct {
	PlaceID       string
	Name          string
	Category      string
	EstimatedCost int
	Latitude      float64
	Longitude     float64
}

// Activities searches attractions near a city and applies optional filters:
// category (case-insensitive substring of the place's category label) and
// maxCost (drops places whose estimated cost exceeds it; 0 disables the
// filter, matching the original contract where an unset bound is falsy).
func (s *SearchService) Activities(ctx context.Context, city, category string, maxCost int) ([]ActivityResult, error) {
	pois, err := s.places.Search(ctx, city, places.CategoryAttractions, searchActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Activities: %w", err)
	}

	results := make([]ActivityResult, 0, len(pois))
	for _, p := range pois {
		cost := places.EstimateCost(p.Category)

		if category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
			continue
		}
		if maxCost != 0 && cost > maxCost {
			continue
		}

		results = append(results, ActivityResult{
			PlaceID:       p.PlaceID,
			Name:          p.Name,
			Category:      p.Category,
			EstimatedCost: cost,
			Latitude:      p.Latitude,
			Longitude:     p.Longitude,
		})
	}
	return results, nil
}
