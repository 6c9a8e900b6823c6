package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: a date-bounded plan owned by one user.
// Stops belong to a trip; deleting a trip cascades to its stops and
// activities at the database level.
//
// ShareToken is nil until the owner shares the trip. Once set, anyone holding
// the token can read the trip without authentication as long as IsPublic is
// true.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	PhotoURL    string
	Description string
	IsPublic    bool
	ShareToken  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
