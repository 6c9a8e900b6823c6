package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/places"
)

// poisPerDay is how many points of interest the generator requests per trip
// day. Fetching days*5 gives the partitioning step headroom without paging.
const poisPerDay = 5

// POISearcher lists points of interest near a city, filtered by an upstream
// category id.
type POISearcher interface {
	Search(ctx context.Context, near, categories string, limit int) ([]domain.PointOfInterest, error)
}

// ItineraryService generates day-wise itineraries for owned trips.
type ItineraryService struct {
	owner  *Ownership
	places POISearcher
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(owner *Ownership, places POISearcher) *ItineraryService {
	return &ItineraryService{owner: owner, places: places}
}

// AutoPlan builds a day-wise itinerary for a trip owned by userID.
//
// The trip's date range is split into inclusive whole days; up to days*5
// attractions are fetched near city and partitioned into contiguous
// per-day chunks (remainder dropped). The result always has exactly one
// entry per day, and is deterministic given identical upstream responses.
//
// city defaults to the trip name when empty — the original clients send the
// destination city explicitly.
func (s *ItineraryService) AutoPlan(ctx context.Context, userID, tripID uuid.UUID, city string) ([]domain.ItineraryDay, error) {
	trip, err := s.owner.Trip(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.AutoPlan: %w", err)
	}
	if city == "" {
		city = trip.Name
	}

	days := domain.DaysInclusive(trip.StartDate, trip.EndDate)
	if days < 1 {
		return nil, fmt.Errorf("%w: trip date range is invalid", domain.ErrValidation)
	}

	pois, err := s.places.Search(ctx, city, places.CategoryAttractions, days*poisPerDay)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.AutoPlan: %w", err)
	}

	return domain.BuildItinerary(city, trip.StartDate, days, pois), nil
}
