package cli

import (
	"errors"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unparseable flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested student or enrollment was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Corrupted data or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Missing fields, underage students, bad contact numbers,
	// unknown grade levels or strands.
	ExitValidation = 5

	// ExitConflict indicates a duplicate record.
	// Use for: Enrolling a student twice or reusing a student ID.
	ExitConflict = 6

	// ExitBlocked indicates the operation was refused by a business rule.
	// Use for: Deleting a registration that is still enrolled.
	ExitBlocked = 7
)

// ErrUsage marks errors caused by incorrect command usage
var ErrUsage = errors.New("usage error")

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrDeletionBlocked):
		return ExitBlocked
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrConstraint):
		return ExitConflict
	default:
		return ExitError
	}
}

// ErrorCodeFor returns the machine readable code used in JSON errors
func ErrorCodeFor(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitBlocked:
		return "DELETION_BLOCKED"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitConflict:
		return "CONFLICT"
	default:
		if errors.Is(err, models.ErrStorage) {
			return "STORAGE_ERROR"
		}
		return "INTERNAL_ERROR"
	}
}

// reportedError marks an error that a command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
