package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// AuthAdmin is the privileged slice of the auth service client used for
// account deletion.
type AuthAdmin interface {
	AdminDeleteUser(ctx context.Context, userID uuid.UUID) error
}

// ProfileService implements the current-user profile operations.
type ProfileService struct {
	users repo.UserRepo
	admin AuthAdmin
}

// NewProfileService constructs a ProfileService.
func NewProfileService(users repo.UserRepo, admin AuthAdmin) *ProfileService {
	return &ProfileService{users: users, admin: admin}
}

// Get returns the authenticated user's profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return user, nil
}

// Update overwrites the mutable profile fields and returns the updated record.
func (s *ProfileService) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return updated, nil
}

// DeleteAccount removes the account upstream, then the local profile row.
// The database cascade takes the user's trips, stops, and activities with it.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.admin.AdminDeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("service.ProfileService.DeleteAccount: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		// The upstream account is already gone; a missing local row is fine.
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("service.ProfileService.DeleteAccount: %w", err)
		}
	}
	return nil
}
