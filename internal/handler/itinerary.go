package handler

import (
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// AutoPlanRequest is the body for POST /itinerary/trips/{tripID}/auto-plan.
// City is optional; when omitted the trip name is used as the destination.
type AutoPlanRequest struct {
	City string `json:"city"`
}

// PlannedActivityResponse is one suggested point of interest in a generated
// itinerary day.
type PlannedActivityResponse struct {
	PlaceID   string  `json:"place_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ItineraryDayResponse is one calendar day of a generated itinerary.
type ItineraryDayResponse struct {
	Day        int                       `json:"day"`
	Date       openapi_types.Date        `json:"date"`
	City       string                    `json:"city"`
	Activities []PlannedActivityResponse `json:"activities"`
}

// AutoPlanResponse wraps the generated plan.
type AutoPlanResponse struct {
	Days []ItineraryDayResponse `json:"days"`
}

// AutoPlan handles POST /itinerary/trips/{tripID}/auto-plan.
// The body is optional; an empty body plans around the trip name.
func (s *Server) AutoPlan(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	// An absent body is fine; a malformed one is not.
	var req AutoPlanRequest
	if err := decodeJSON(r, &req); err != nil && err.Error() != "request body is required" {
		badRequest(w, err.Error())
		return
	}

	days, err := s.itinerary.AutoPlan(r.Context(), userID, tripID, req.City)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	resp := AutoPlanResponse{Days: make([]ItineraryDayResponse, len(days))}
	for i, d := range days {
		activities := make([]PlannedActivityResponse, len(d.Activities))
		for j, a := range d.Activities {
			activities[j] = PlannedActivityResponse{
				PlaceID:   a.PlaceID,
				Name:      a.Name,
				Category:  a.Category,
				Latitude:  a.Latitude,
				Longitude: a.Longitude,
			}
		}
		resp.Days[i] = ItineraryDayResponse{
			Day:        d.Day,
			Date:       openapi_types.Date{Time: d.Date},
			City:       d.City,
			Activities: activities,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
