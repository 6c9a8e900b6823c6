// Package service contains the business logic for the GlobeTrotter API.
// Services validate inputs, enforce ownership, and orchestrate repo and
// upstream-client calls. No SQL lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// Ownership walks the user → trip → stop → activity chain for authorization.
// Every check resolves to "does the trip at the top of the chain belong to
// this user"; a chain that ends at someone else's trip yields
// domain.ErrNotFound, never a forbidden error, so foreign resources are
// indistinguishable from missing ones.
type Ownership struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewOwnership constructs the shared ownership checker.
func NewOwnership(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *Ownership {
	return &Ownership{trips: trips, stops: stops, activities: activities}
}

// Trip verifies that tripID belongs to userID and returns the trip.
func (o *Ownership) Trip(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := o.trips.GetByID(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.Ownership.Trip: %w", err)
	}
	return trip, nil
}

// Stop verifies that stopID sits under a trip owned by userID and returns
// the owning trip id.
func (o *Ownership) Stop(ctx context.Context, userID, stopID uuid.UUID) (uuid.UUID, error) {
	tripID, err := o.stops.GetTripID(ctx, stopID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.Ownership.Stop: %w", err)
	}
	if _, err := o.trips.GetByID(ctx, userID, tripID); err != nil {
		return uuid.Nil, fmt.Errorf("service.Ownership.Stop: %w", err)
	}
	return tripID, nil
}

// Activity verifies that activityID sits under a stop whose trip is owned by
// userID and returns the owning stop id.
func (o *Ownership) Activity(ctx context.Context, userID, activityID uuid.UUID) (uuid.UUID, error) {
	stopID, err := o.activities.GetStopID(ctx, activityID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.Ownership.Activity: %w", err)
	}
	if _, err := o.Stop(ctx, userID, stopID); err != nil {
		return uuid.Nil, fmt.Errorf("service.Ownership.Activity: %w", err)
	}
	return stopID, nil
}
