package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
)

// UserResponse is the JSON shape of a user profile.
type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           *string   `json:"full_name,omitempty"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	LanguagePreference string    `json:"language_preference"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the body for PUT /profile/me. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	FullName           *string `json:"full_name"`
	AvatarURL          *string `json:"avatar_url"`
	LanguagePreference *string `json:"language_preference"`
}

func userToResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		LanguagePreference: u.LanguagePreference,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
	if u.FullName != "" {
		resp.FullName = &u.FullName
	}
	if u.AvatarURL != "" {
		resp.AvatarURL = &u.AvatarURL
	}
	return resp
}

// GetProfile handles GET /profile/me.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	user, err := s.profile.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "profile not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// UpdateProfile handles PUT /profile/me.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	current, err := s.profile.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "profile not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		current.AvatarURL = *req.AvatarURL
	}
	if req.LanguagePreference != nil {
		current.LanguagePreference = *req.LanguagePreference
	}

	updated, err := s.profile.Update(r.Context(), current)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "profile not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(updated))
}

// DeleteProfile handles DELETE /profile/me. The upstream auth account is
// removed first, then the local profile row; trips cascade at the database
// level.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	if err := s.profile.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "profile not found")
			return
		}
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
