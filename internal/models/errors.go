package models

import "errors"

// Error kinds shared by the storage and service layers.
// Callers match them with errors.Is; the concrete cause stays wrapped.
var (
	// ErrValidation indicates missing or malformed input. It is produced by the
	// service layer and never reaches storage.
	ErrValidation = errors.New("validation failed")

	// ErrConstraint indicates a primary key collision (duplicate student id or
	// a second enrollment for the same student)
	ErrConstraint = errors.New("constraint violation")

	// ErrNotFound indicates the referenced student id does not exist
	ErrNotFound = errors.New("not found")

	// ErrDeletionBlocked indicates a registration still has an enrollment row
	ErrDeletionBlocked = errors.New("deletion blocked: student is currently enrolled")

	// ErrStorage is the catch-all for persistence failures
	ErrStorage = errors.New("storage error")
)
