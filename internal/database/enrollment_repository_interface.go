package database

import (
	"context"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// EnrollmentReader defines read operations for enrollments.
type EnrollmentReader interface {
	GetAllEnrolled(ctx context.Context) ([]*models.EnrollmentSummary, error)
	FilterEnrolled(ctx context.Context, gradeLevel, strand string) ([]*models.EnrollmentSummary, error)
	IsEnrolled(ctx context.Context, id string) (bool, error)
	GetEnrollmentCounts(ctx context.Context) ([]models.EnrollmentCount, error)
}

// EnrollmentWriter defines write operations for enrollments.
type EnrollmentWriter interface {
	Enroll(ctx context.Context, enrollment *models.EnrolledStudent) (string, error)
	UpdateEnrollment(ctx context.Context, id, gradeLevel, strand string) (bool, error)
	DeleteEnrollment(ctx context.Context, id string) (bool, error)
}

// EnrollmentRepository combines all enrollment operations.
type EnrollmentRepository interface {
	EnrollmentReader
	EnrollmentWriter
}
