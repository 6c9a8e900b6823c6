package handler

import (
	"net/http"
	"strconv"
)

// CitySearchResult is one entry in the GET /search/cities response.
type CitySearchResult struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Region     string  `json:"region"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int64   `json:"population"`
}

// ActivitySearchResult is one entry in the GET /search/activities response.
type ActivitySearchResult struct {
	PlaceID       string  `json:"place_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	EstimatedCost int     `json:"estimated_cost"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// SearchCities handles GET /search/cities?q=...&region=...
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		badRequest(w, "query parameter q is required")
		return
	}
	region := r.URL.Query().Get("region")

	matches, err := s.search.Cities(r.Context(), q, region)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	data := make([]CitySearchResult, len(matches))
	for i, m := range matches {
		data[i] = CitySearchResult{
			City:       m.City,
			Country:    m.Country,
			Region:     m.Region,
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			Population: m.Population,
		}
	}
	writeJSON(w, http.StatusOK, data)
}

// SearchActivities handles GET /search/activities?city=...&category=...&max_cost=...
func (s *Server) SearchActivities(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		badRequest(w, "query parameter city is required")
		return
	}
	category := r.URL.Query().Get("category")

	maxCost := 0
	if raw := r.URL.Query().Get("max_cost"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "max_cost must be a non-negative integer")
			return
		}
		maxCost = n
	}

	results, err := s.search.Activities(r.Context(), city, category, maxCost)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	data := make([]ActivitySearchResult, len(results))
	for i, a := range results {
		data[i] = ActivitySearchResult{
			PlaceID:       a.PlaceID,
			Name:          a.Name,
			Category:      a.Category,
			EstimatedCost: a.EstimatedCost,
			Latitude:      a.Latitude,
			Longitude:     a.Longitude,
		}
	}
	writeJSON(w, http.StatusOK, data)
}
