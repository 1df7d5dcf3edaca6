package entity

import "errors"

// Sentinel errors shared by all usecases. Handlers map these to HTTP status
// codes; everything else is treated as an internal error.
var (
	// ErrNotFound covers both missing rows and rows the actor does not own.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is reserved for the admin self-guards.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation marks domain-rule violations (bad rating, malformed date,
	// missing required fields).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate marks uniqueness violations (username, email, favorite pair).
	ErrDuplicate = errors.New("already exists")
)
