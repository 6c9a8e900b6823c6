package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// CreateTripRequest is the body for POST /trips and PUT /trips/{tripID}.
type CreateTripRequest struct {
	Name        string              `json:"name"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	PhotoURL    *string             `json:"photo_url"`
	Description *string             `json:"description"`
	IsPublic    *bool               `json:"is_public"`
}

// TripResponse is the JSON shape of a trip.
type TripResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Name        string             `json:"name"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	PhotoURL    *string            `json:"photo_url,omitempty"`
	Description *string            `json:"description,omitempty"`
	IsPublic    bool               `json:"is_public"`
	ShareToken  *string            `json:"share_token,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TripListResponse wraps a page of trips with the total row count.
type TripListResponse struct {
	Data  []TripResponse `json:"data"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

// ShareResponse is the body returned by POST /trips/{tripID}/share.
type ShareResponse struct {
	ShareURL   string `json:"share_url"`
	ShareToken string `json:"share_token"`
}

func requestToTrip(req CreateTripRequest) domain.Trip {
	t := domain.Trip{Name: req.Name}
	if req.StartDate != nil {
		t.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		t.EndDate = req.EndDate.Time
	}
	if req.PhotoURL != nil {
		t.PhotoURL = *req.PhotoURL
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsPublic != nil {
		t.IsPublic = *req.IsPublic
	}
	return t
}

func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		Name:       t.Name,
		StartDate:  openapi_types.Date{Time: t.StartDate},
		EndDate:    openapi_types.Date{Time: t.EndDate},
		IsPublic:   t.IsPublic,
		ShareToken: t.ShareToken,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.PhotoURL != "" {
		resp.PhotoURL = &t.PhotoURL
	}
	if t.Description != "" {
		resp.Description = &t.Description
	}
	return resp
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), userID, requestToTrip(req))
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?skip= and ?limit= query parameters (defaults: skip=0, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	params := domain.NewListParams(queryInt(r, "skip"), queryInt(r, "limit"))

	trips, total, err := s.trips.List(r.Context(), userID, params)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data:  data,
		Skip:  params.Skip,
		Limit: params.Limit,
		Total: total,
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req CreateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	trip := requestToTrip(req)
	trip.ID = tripID

	updated, err := s.trips.Update(r.Context(), userID, trip)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ShareTrip handles POST /trips/{tripID}/share.
// Sharing is idempotent: re-sharing returns the existing link.
func (s *Server) ShareTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	link, err := s.trips.Share(r.Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ShareResponse{ShareURL: link.ShareURL, ShareToken: link.ShareToken})
}

// UnshareTrip handles DELETE /trips/{tripID}/share.
func (s *Server) UnshareTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.trips.Unshare(r.Context(), userID, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSharedTrip handles GET /trips/shared/{token}. No authentication: the
// token is the capability. Unknown, revoked, and private tokens are all the
// same 404 so the response never reveals whether a trip exists.
func (s *Server) GetSharedTrip(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		notFound(w, "shared trip not found")
		return
	}

	trip, err := s.trips.GetShared(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "shared trip not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}
