package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/aadarshsenapati/globetrotter/backend/internal/authclient"
	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// minPasswordLength matches the auth service's own minimum so obviously bad
// input fails before a network round trip.
const minPasswordLength = 6

// Authenticator is the slice of the auth service client the auth flow uses.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (authclient.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (authclient.Session, error)
	Refresh(ctx context.Context, refreshToken string) (authclient.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// AuthService orchestrates the external auth service and the local profile
// table. Accounts live upstream; this side only mirrors profile rows keyed by
// the auth-service-issued user id.
type AuthService struct {
	auth  Authenticator
	users repo.UserRepo
}

// NewAuthService constructs an AuthService.
func NewAuthService(auth Authenticator, users repo.UserRepo) *AuthService {
	return &AuthService{auth: auth, users: users}
}

// AuthResult is a session plus the mirrored profile row.
type AuthResult struct {
	Session authclient.Session
	User    domain.User
}

// SignUp registers an account upstream, then upserts the local profile row
// with the issued user id.
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	session, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	user, err := s.users.Upsert(ctx, domain.User{
		ID:       session.User.ID,
		Email:    email,
		FullName: fullName,
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}

	return AuthResult{Session: session, User: user}, nil
}

// Login exchanges credentials for a session and loads the profile row.
// A missing profile row is backfilled — accounts created before the profile
// table existed should still be able to log in.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	session, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.User.ID)
	if err != nil {
		user, err = s.users.Upsert(ctx, domain.User{ID: session.User.ID, Email: session.User.Email})
		if err != nil {
			return AuthResult{}, fmt.Errorf("service.AuthService.Login: %w", err)
		}
	}

	return AuthResult{Session: session, User: user}, nil
}

// Refresh exchanges a refresh token for a fresh session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	if refreshToken == "" {
		return AuthResult{}, fmt.Errorf("%w: refresh_token is required", domain.ErrValidation)
	}

	session, err := s.auth.Refresh(ctx, refreshToken)
	if err != nil {
		return AuthResult{}, fmt.Errorf("service.AuthService.Refresh: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.User.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("service.AuthService.Refresh: %w", err)
	}

	return AuthResult{Session: session, User: user}, nil
}

// Logout revokes the session behind accessToken upstream.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if err := s.auth.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}
