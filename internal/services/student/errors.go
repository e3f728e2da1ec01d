package student

import (
	"errors"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// Student-related errors
var (
	// Validation errors
	ErrMissingFields          = errors.New("required fields are missing")
	ErrUnderage               = errors.New("student is below the minimum age")
	ErrInvalidBirthDate       = errors.New("invalid birth date (must be YYYY-MM-DD)")
	ErrInvalidContact         = errors.New("student contact must be exactly 11 digits")
	ErrInvalidGuardianContact = errors.New("guardian contact must be exactly 11 digits")
	ErrInvalidGrade           = errors.New("invalid grade level")
	ErrInvalidStrand          = errors.New("invalid strand")
	ErrInvalidStudentID       = errors.New("invalid student ID")
)

// ValidationError is a rejected request together with the notification that
// was shown for it. It matches both Kind and models.ErrValidation.
type ValidationError struct {
	Kind    error
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, models.ErrValidation}
}
