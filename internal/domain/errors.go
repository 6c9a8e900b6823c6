package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist — or exists but belongs to another user. Foreign
// resources are deliberately indistinguishable from missing ones.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a bearer token is missing, malformed, or
// rejected by the auth service. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream is returned when a call to the geocoding, places, or auth
// service fails (timeout, non-2xx, undecodable body). Handlers collapse this
// to a generic HTTP 400 with the raw message — no retries, no partial results.
var ErrUpstream = errors.New("upstream failure")
