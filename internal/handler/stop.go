package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// StopRequest is the body for creating or updating an itinerary stop.
// Location is the city query resolved through the geocoding service; the
// stored location is the canonical name the service returns.
type StopRequest struct {
	Name          string              `json:"name"`
	Location      string              `json:"location"`
	ArrivalDate   *openapi_types.Date `json:"arrival_date"`
	DepartureDate *openapi_types.Date `json:"departure_date"`
	Notes         *string             `json:"notes"`
}

// StopResponse is the JSON shape of a stop.
type StopResponse struct {
	ID            uuid.UUID           `json:"id"`
	TripID        uuid.UUID           `json:"trip_id"`
	Name          string              `json:"name"`
	Location      string              `json:"location"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	ArrivalDate   *openapi_types.Date `json:"arrival_date,omitempty"`
	DepartureDate *openapi_types.Date `json:"departure_date,omitempty"`
	Position      int                 `json:"position"`
	Notes         *string             `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func requestToStop(req StopRequest) domain.Stop {
	s := domain.Stop{
		Name:     req.Name,
		Location: req.Location,
	}
	if req.ArrivalDate != nil {
		ad := req.ArrivalDate.Time
		s.ArrivalDate = &ad
	}
	if req.DepartureDate != nil {
		dd := req.DepartureDate.Time
		s.DepartureDate = &dd
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}
	return s
}

func stopToResponse(st domain.Stop) StopResponse {
	resp := StopResponse{
		ID:        st.ID,
		TripID:    st.TripID,
		Name:      st.Name,
		Location:  st.Location,
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
		Position:  st.Position,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
	if st.ArrivalDate != nil {
		ad := openapi_types.Date{Time: *st.ArrivalDate}
		resp.ArrivalDate = &ad
	}
	if st.DepartureDate != nil {
		dd := openapi_types.Date{Time: *st.DepartureDate}
		resp.DepartureDate = &dd
	}
	if st.Notes != "" {
		resp.Notes = &st.Notes
	}
	return resp
}

// CreateStop handles POST /itinerary/trips/{tripID}/stops.
func (s *Server) CreateStop(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req StopRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	stop := requestToStop(req)
	stop.TripID = tripID

	created, err := s.stops.Create(r.Context(), userID, stop)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Either the trip is not the caller's or the location failed to
			// geocode; the service tags the latter with "city not found".
			msg := "trip not found"
			if strings.Contains(err.Error(), "city not found") {
				msg = "city not found"
			}
			notFound(w, msg)
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, stopToResponse(created))
}

// ListStops handles GET /itinerary/trips/{tripID}/stops.
// Stops come back ordered by position.
func (s *Server) ListStops(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	stops, err := s.stops.ListByTripID(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	data := make([]StopResponse, len(stops))
	for i, st := range stops {
		data[i] = stopToResponse(st)
	}
	writeJSON(w, http.StatusOK, data)
}

// UpdateStop handles PUT /itinerary/stops/{stopID}.
func (s *Server) UpdateStop(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req StopRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	stop := requestToStop(req)
	stop.ID = stopID

	updated, err := s.stops.Update(r.Context(), userID, stop)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "stop not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stopToResponse(updated))
}

// DeleteStop handles DELETE /itinerary/stops/{stopID}.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.stops.Delete(r.Context(), userID, stopID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "stop not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
