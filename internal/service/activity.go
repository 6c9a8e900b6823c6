package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/places"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// activityPositionBase is the first position assigned within a stop.
const activityPositionBase = 0

// ActivityService implements business logic for Activity operations.
type ActivityService struct {
	owner      *Ownership
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided collaborators.
func NewActivityService(owner *Ownership, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{owner: owner, activities: activities}
}

// Create verifies that the parent stop sits under a trip owned by userID,
// assigns the next position, and persists. A nil Cost is defaulted from the
// category heuristic so every activity carries a budget estimate.
func (s *ActivityService) Create(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if _, err := s.owner.Stop(ctx, userID, activity.StopID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if strings.TrimSpace(activity.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	if activity.Cost == nil {
		cost := float64(places.EstimateCost(activity.ActivityType))
		activity.Cost = &cost
	}

	max, ok, err := s.activities.MaxPosition(ctx, activity.StopID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	activity.Position = nextPosition(max, ok, activityPositionBase)

	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByStopID returns all activities for a stop after walking the ownership
// chain. Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByStopID(ctx context.Context, userID, stopID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.owner.Stop(ctx, userID, stopID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStopID: %w", err)
	}
	activities, err := s.activities.ListByStopID(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStopID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update validates and persists changes to an existing activity after
// walking the ownership chain.
func (s *ActivityService) Update(ctx context.Context, userID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	stopID, err := s.owner.Activity(ctx, userID, activity.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	activity.StopID = stopID

	if strings.TrimSpace(activity.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity after walking the ownership chain.
func (s *ActivityService) Delete(ctx context.Context, userID, activityID uuid.UUID) error {
	stopID, err := s.owner.Activity(ctx, userID, activityID)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, stopID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}
