package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// ScheduledActivityRequest is the body for creating or updating a calendar
// entry. Day is the 1-based day index within the trip.
type ScheduledActivityRequest struct {
	TripID        uuid.UUID `json:"trip_id"`
	City          string    `json:"city"`
	Day           int       `json:"day"`
	PlaceID       *string   `json:"place_id"`
	Name          string    `json:"name"`
	Category      *string   `json:"category"`
	EstimatedCost *int      `json:"estimated_cost"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
}

// ScheduledActivityResponse is the JSON shape of a calendar entry.
type ScheduledActivityResponse struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"trip_id"`
	City          string    `json:"city"`
	Day           int       `json:"day"`
	PlaceID       *string   `json:"place_id,omitempty"`
	Name          string    `json:"name"`
	Category      *string   `json:"category,omitempty"`
	EstimatedCost *int      `json:"estimated_cost,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func requestToScheduledActivity(req ScheduledActivityRequest) domain.ScheduledActivity {
	e := domain.ScheduledActivity{
		TripID:        req.TripID,
		City:          req.City,
		Day:           req.Day,
		Name:          req.Name,
		EstimatedCost: req.EstimatedCost,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	if req.PlaceID != nil {
		e.PlaceID = *req.PlaceID
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	return e
}

func scheduledActivityToResponse(e domain.ScheduledActivity) ScheduledActivityResponse {
	resp := ScheduledActivityResponse{
		ID:            e.ID,
		TripID:        e.TripID,
		City:          e.City,
		Day:           e.Day,
		Name:          e.Name,
		EstimatedCost: e.EstimatedCost,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.PlaceID != "" {
		resp.PlaceID = &e.PlaceID
	}
	if e.Category != "" {
		resp.Category = &e.Category
	}
	return resp
}

// CreateScheduledActivity handles POST /schedule/activities.
func (s *Server) CreateScheduledActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req ScheduledActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.TripID == uuid.Nil {
		badRequest(w, "trip_id is required")
		return
	}

	created, err := s.schedule.Create(r.Context(), userID, requestToScheduledActivity(req))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, scheduledActivityToResponse(created))
}

// ListScheduledActivities handles GET /schedule/activities?trip_id=...
// Entries come back ordered by day, then creation time.
func (s *Server) ListScheduledActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	tripID, err := uuid.Parse(r.URL.Query().Get("trip_id"))
	if err != nil {
		badRequest(w, "query parameter trip_id is required")
		return
	}

	entries, err := s.schedule.ListByTripID(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	data := make([]ScheduledActivityResponse, len(entries))
	for i, e := range entries {
		data[i] = scheduledActivityToResponse(e)
	}
	writeJSON(w, http.StatusOK, data)
}

// UpdateScheduledActivity handles PUT /schedule/activities/{entryID}.
func (s *Server) UpdateScheduledActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	entryID, err := pathUUID(r, "entryID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req ScheduledActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.TripID == uuid.Nil {
		badRequest(w, "trip_id is required")
		return
	}

	entry := requestToScheduledActivity(req)
	entry.ID = entryID

	updated, err := s.schedule.Update(r.Context(), userID, entry)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "scheduled activity not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scheduledActivityToResponse(updated))
}

// DeleteScheduledActivity handles DELETE /schedule/activities/{entryID}?trip_id=...
func (s *Server) DeleteScheduledActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	entryID, err := pathUUID(r, "entryID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	tripID, err := uuid.Parse(r.URL.Query().Get("trip_id"))
	if err != nil {
		badRequest(w, "query parameter trip_id is required")
		return
	}

	if err := s.schedule.Delete(r.Context(), userID, tripID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "scheduled activity not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
