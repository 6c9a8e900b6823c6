package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// All operations run on behalf of an authenticated user; foreign trips
// surface as domain.ErrNotFound.
type TripService struct {
	repo         repo.TripRepo
	shareBaseURL string
}

// NewTripService constructs a TripService. shareBaseURL is the frontend
// origin used to build public share links.
func NewTripService(r repo.TripRepo, shareBaseURL string) *TripService {
	return &TripService{repo: r, shareBaseURL: strings.TrimRight(shareBaseURL, "/")}
}

// Create validates and persists a new trip owned by userID.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	trip.UserID = userID
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip owned by userID.
func (s *TripService) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the user's trips, most recently created first, plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, params domain.ListParams) ([]domain.Trip, int, error) {
	trips, total, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip owned by userID.
func (s *TripService) Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	trip.UserID = userID
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip owned by userID. The database cascade removes the
// trip's stops and activities.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ShareLink is the result of sharing a trip.
type ShareLink struct {
	ShareURL   string
	ShareToken string
}

// Share makes the trip publicly readable and returns its share link.
// An existing token is reused, so re-sharing never invalidates links that
// were already handed out.
func (s *TripService) Share(ctx context.Context, userID, tripID uuid.UUID) (ShareLink, error) {
	trip, err := s.repo.GetByID(ctx, userID, tripID)
	if err != nil {
		return ShareLink{}, fmt.Errorf("service.TripService.Share: %w", err)
	}

	token := ""
	if trip.ShareToken != nil {
		token = *trip.ShareToken
	}
	if token == "" {
		token = newShareToken()
		if _, err := s.repo.SetShareToken(ctx, userID, tripID, token); err != nil {
			return ShareLink{}, fmt.Errorf("service.TripService.Share: %w", err)
		}
	}

	return ShareLink{
		ShareURL:   s.shareBaseURL + "/shared/" + token,
		ShareToken: token,
	}, nil
}

// Unshare removes public sharing from a trip owned by userID.
func (s *TripService) Unshare(ctx context.Context, userID, tripID uuid.UUID) error {
	if err := s.repo.ClearShareToken(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Unshare: %w", err)
	}
	return nil
}

// GetShared returns a public trip by its share token. No authentication.
func (s *TripService) GetShared(ctx context.Context, token string) (domain.Trip, error) {
	trip, err := s.repo.GetByShareToken(ctx, token)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetShared: %w", err)
	}
	return trip, nil
}

// newShareToken returns a 32-byte URL-safe random token.
func newShareToken() string {
	buf := make([]byte, 32)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - StartDate is required; EndDate must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
