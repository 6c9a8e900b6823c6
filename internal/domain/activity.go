package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a bookable or schedulable item nested under a stop.
// PlaceID is the external places-API identifier when the activity was picked
// from a search result; empty for hand-entered activities.
//
// ScheduledTime is a wall-clock "HH:MM" string rather than a time.Time:
// the value is display-only and has no timezone semantics.
type Activity struct {
	ID              uuid.UUID
	StopID          uuid.UUID
	Name            string
	Description     string
	ActivityType    string
	ScheduledTime   *string
	DurationMinutes *int
	Cost            *float64
	Currency        string
	Location        string
	Latitude        *float64
	Longitude       *float64
	PlaceID         string
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ScheduledActivity is a day-slotted entry on a trip's auto-planned calendar.
// Unlike Activity it hangs directly off the trip, keyed by a 1-based day
// index instead of a stop.
type ScheduledActivity struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	City          string
	Day           int
	PlaceID       string
	Name          string
	Category      string
	EstimatedCost *int
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
