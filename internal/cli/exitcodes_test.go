package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/shsenroll/internal/models"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"usage", fmt.Errorf("%w: --id is required", ErrUsage), ExitUsage, "USAGE_ERROR"},
		{"not found", fmt.Errorf("%w: student S000001", models.ErrNotFound), ExitNotFound, "NOT_FOUND"},
		{"validation", &student.ValidationError{Kind: student.ErrUnderage}, ExitValidation, "VALIDATION_ERROR"},
		{"conflict", fmt.Errorf("%w: duplicate", models.ErrConstraint), ExitConflict, "CONFLICT"},
		{"blocked", fmt.Errorf("x: %w", models.ErrDeletionBlocked), ExitBlocked, "DELETION_BLOCKED"},
		{"storage", fmt.Errorf("%w: disk full", models.ErrStorage), ExitError, "STORAGE_ERROR"},
		{"other", errors.New("boom"), ExitError, "INTERNAL_ERROR"},
		{"reported keeps kind", Reported(fmt.Errorf("%w: x", models.ErrConstraint)), ExitConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.wantCode {
				t.Fatalf("ExitCodeFor() = %d, want %d", got, tt.wantCode)
			}
			if tt.err == nil {
				return
			}
			if got := ErrorCodeFor(tt.err); got != tt.wantName {
				t.Fatalf("ErrorCodeFor() = %s, want %s", got, tt.wantName)
			}
		})
	}
}

func TestReported(t *testing.T) {
	if Reported(nil) != nil {
		t.Fatal("Reported(nil) should be nil")
	}
	base := errors.New("boom")
	if IsReported(base) {
		t.Fatal("plain error should not be reported")
	}
	wrapped := Reported(base)
	if !IsReported(wrapped) || !errors.Is(wrapped, base) {
		t.Fatal("reported error should unwrap to its cause")
	}
	if wrapped.Error() != "boom" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
}
