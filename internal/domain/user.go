// Package domain contains the core data types for the GlobeTrotter API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile row mirroring an account in the external auth service.
// The ID is issued by the auth service at signup; the profile row is upserted
// with the same UUID so the ownership chain (user → trip → stop → activity)
// joins cleanly.
type User struct {
	ID                 uuid.UUID
	Email              string
	FullName           string
	AvatarURL          string
	LanguagePreference string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
