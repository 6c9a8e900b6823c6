package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/middleware"
	"github.com/aadarshsenapati/globetrotter/backend/internal/service"
)

// SignUpRequest is the body for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SessionResponse carries the issued token pair plus the profile it belongs to.
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	TokenType    string       `json:"token_type"`
	UserID       uuid.UUID    `json:"user_id"`
	User         UserResponse `json:"user"`
}

func sessionToResponse(res service.AuthResult) SessionResponse {
	return SessionResponse{
		AccessToken:  res.Session.AccessToken,
		RefreshToken: res.Session.RefreshToken,
		ExpiresIn:    res.Session.ExpiresIn,
		TokenType:    "bearer",
		UserID:       res.User.ID,
		User:         userToResponse(res.User),
	}
}

// SignUp handles POST /auth/signup.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := s.auth.SignUp(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionToResponse(res))
}

// Login handles POST /auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToResponse(res))
}

// RefreshToken handles POST /auth/refresh.
func (s *Server) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToResponse(res))
}

// Logout handles POST /auth/logout. The access token extracted by the auth
// middleware is revoked upstream.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorDetail{Code: "unauthorized", Message: "missing bearer token"}})
		return
	}

	if err := s.auth.Logout(r.Context(), token); err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
