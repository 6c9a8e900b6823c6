package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// ScheduleService implements business logic for day-slotted scheduled
// activities — the persisted form of an auto-planned itinerary.
type ScheduleService struct {
	owner    *Ownership
	schedule repo.ScheduleRepo
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(owner *Ownership, schedule repo.ScheduleRepo) *ScheduleService {
	return &ScheduleService{owner: owner, schedule: schedule}
}

// Create verifies trip ownership and persists a scheduled activity.
func (s *ScheduleService) Create(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	if _, err := s.owner.Trip(ctx, userID, entry.TripID); err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("service.ScheduleService.Create: %w", err)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return domain.ScheduledActivity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if entry.Day < 1 {
		return domain.ScheduledActivity{}, fmt.Errorf("%w: day must be 1 or greater", domain.ErrValidation)
	}

	result, err := s.schedule.Create(ctx, entry)
	if err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("service.ScheduleService.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns all scheduled activities for a trip owned by userID.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ScheduleService) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ScheduledActivity, error) {
	if _, err := s.owner.Trip(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.ScheduleService.ListByTripID: %w", err)
	}
	entries, err := s.schedule.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.ListByTripID: %w", err)
	}
	if entries == nil {
		return []domain.ScheduledActivity{}, nil
	}
	return entries, nil
}

// Update verifies trip ownership and persists changes to a scheduled activity.
func (s *ScheduleService) Update(ctx context.Context, userID uuid.UUID, entry domain.ScheduledActivity) (domain.ScheduledActivity, error) {
	if _, err := s.owner.Trip(ctx, userID, entry.TripID); err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	if entry.Day < 1 {
		return domain.ScheduledActivity{}, fmt.Errorf("%w: day must be 1 or greater", domain.ErrValidation)
	}

	result, err := s.schedule.Update(ctx, entry)
	if err != nil {
		return domain.ScheduledActivity{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	return result, nil
}

// Delete verifies trip ownership and removes a scheduled activity.
func (s *ScheduleService) Delete(ctx context.Context, userID, tripID, entryID uuid.UUID) error {
	if _, err := s.owner.Trip(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	if err := s.schedule.Delete(ctx, tripID, entryID); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	return nil
}
