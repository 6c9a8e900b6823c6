package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// ActivityRequest is the body for creating or updating an activity.
// Cost left nil gets estimated from the activity type's category keywords.
type ActivityRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	ActivityType    *string  `json:"activity_type"`
	ScheduledTime   *string  `json:"scheduled_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	Cost            *float64 `json:"cost"`
	Currency        *string  `json:"currency"`
	Location        *string  `json:"location"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	PlaceID         *string  `json:"place_id"`
}

// ActivityResponse is the JSON shape of an activity.
type ActivityResponse struct {
	ID              uuid.UUID `json:"id"`
	StopID          uuid.UUID `json:"stop_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	ActivityType    *string   `json:"activity_type,omitempty"`
	ScheduledTime   *string   `json:"scheduled_time,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Cost            *float64  `json:"cost,omitempty"`
	Currency        string    `json:"currency"`
	Location        *string   `json:"location,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	PlaceID         *string   `json:"place_id,omitempty"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func requestToActivity(req ActivityRequest) domain.Activity {
	a := domain.Activity{
		Name:            req.Name,
		ScheduledTime:   req.ScheduledTime,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.ActivityType != nil {
		a.ActivityType = *req.ActivityType
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.Location != nil {
		a.Location = *req.Location
	}
	if req.PlaceID != nil {
		a.PlaceID = *req.PlaceID
	}
	return a
}

func activityToResponse(a domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:              a.ID,
		StopID:          a.StopID,
		Name:            a.Name,
		ScheduledTime:   a.ScheduledTime,
		DurationMinutes: a.DurationMinutes,
		Cost:            a.Cost,
		Currency:        a.Currency,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
		Position:        a.Position,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Description != "" {
		resp.Description = &a.Description
	}
	if a.ActivityType != "" {
		resp.ActivityType = &a.ActivityType
	}
	if a.Location != "" {
		resp.Location = &a.Location
	}
	if a.PlaceID != "" {
		resp.PlaceID = &a.PlaceID
	}
	return resp
}

// CreateActivity handles POST /itinerary/stops/{stopID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	activity := requestToActivity(req)
	activity.StopID = stopID

	created, err := s.activities.Create(r.Context(), userID, activity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "stop not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// ListActivities handles GET /itinerary/stops/{stopID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	activities, err := s.activities.ListByStopID(r.Context(), userID, stopID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "stop not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	data := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		data[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, data)
}

// UpdateActivity handles PUT /itinerary/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	activity := requestToActivity(req)
	activity.ID = activityID

	updated, err := s.activities.Update(r.Context(), userID, activity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "activity not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /itinerary/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.activities.Delete(r.Context(), userID, activityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "activity not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
