package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop is a single place visited during a trip, ordered by Position.
// Location holds the canonical city name resolved through the geocoding
// service at creation time; Latitude/Longitude are nil when the upstream
// response omitted coordinates.
type Stop struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	Name          string
	Location      string
	Latitude      *float64
	Longitude     *float64
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	Position      int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
