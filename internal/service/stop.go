package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

// stopPositionBase is the first position assigned within a trip.
// Stops are 1-based; activities (see activity.go) are 0-based.
const stopPositionBase = 1

// CityValidator resolves a free-text place name to its canonical geocoding
// match, or nil when the upstream cannot resolve it.
// Defined here (in the consumer package) so tests can inject a fake without
// touching the network.
type CityValidator interface {
	ValidateCity(ctx context.Context, name string) (*domain.CityMatch, error)
}

// StopService implements business logic for Stop operations.
// It holds the ownership checker because every operation must walk the
// stop → trip → user chain, and the geocoding client because creating a stop
// resolves its location to a canonical city.
type StopService struct {
	owner *Ownership
	stops repo.StopRepo
	geo   CityValidator
}

// NewStopService constructs a StopService backed by the provided collaborators.
func NewStopService(owner *Ownership, stops repo.StopRepo, geo CityValidator) *StopService {
	return &StopService{owner: owner, stops: stops, geo: geo}
}

// Create verifies trip ownership, resolves the stop's location through the
// geocoding service, assigns the next position, then persists.
// An unresolvable city returns domain.ErrNotFound — the caller asked to stop
// somewhere that does not exist as far as this system can tell.
func (s *StopService) Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	if _, err := s.owner.Trip(ctx, userID, stop.TripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	if strings.TrimSpace(stop.Name) == "" {
		return domain.Stop{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(stop.Location) == "" {
		return domain.Stop{}, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}

	match, err := s.geo.ValidateCity(ctx, stop.Location)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	if match == nil {
		return domain.Stop{}, fmt.Errorf("%w: city not found", domain.ErrNotFound)
	}
	stop.Location = match.City
	if stop.Latitude == nil && match.Latitude != 0 {
		lat := match.Latitude
		stop.Latitude = &lat
	}
	if stop.Longitude == nil && match.Longitude != 0 {
		lng := match.Longitude
		stop.Longitude = &lng
	}

	max, ok, err := s.stops.MaxPosition(ctx, stop.TripID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	stop.Position = nextPosition(max, ok, stopPositionBase)

	result, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns all stops for a trip owned by userID, ordered by position.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) ListByTripID(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	if _, err := s.owner.Trip(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTripID: %w", err)
	}
	if stops == nil {
		return []domain.Stop{}, nil
	}
	return stops, nil
}

// Update validates and persists changes to an existing stop after walking
// the ownership chain. Location changes are stored verbatim — re-geocoding
// only happens at creation.
func (s *StopService) Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	tripID, err := s.owner.Stop(ctx, userID, stop.ID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	stop.TripID = tripID

	if strings.TrimSpace(stop.Name) == "" {
		return domain.Stop{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stop after walking the ownership chain.
func (s *StopService) Delete(ctx context.Context, userID, stopID uuid.UUID) error {
	tripID, err := s.owner.Stop(ctx, userID, stopID)
	if err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	if err := s.stops.Delete(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	return nil
}

// nextPosition adapts a repo MaxPosition result to domain.NextPosition.
func nextPosition(max int, ok bool, base int) int {
	if !ok {
		return domain.NextPosition(nil, base)
	}
	return domain.NextPosition([]int{max}, base)
}
