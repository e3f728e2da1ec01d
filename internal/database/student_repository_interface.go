package database

import (
	"context"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// StudentReader defines read operations for registered students.
type StudentReader interface {
	GetAllRegistered(ctx context.Context) ([]*models.RegisteredStudent, error)
	GetRegistered(ctx context.Context, id string) (*models.RegisteredStudent, error)
	SearchRegistered(ctx context.Context, query string) ([]*models.RegisteredStudent, error)
	GetRegistrationStatuses(ctx context.Context, query string) ([]*models.RegistrationStatus, error)
	CountRegistered(ctx context.Context) (int, error)
}

// StudentWriter defines write operations for registered students.
type StudentWriter interface {
	AddRegistered(ctx context.Context, student *models.RegisteredStudent) (string, error)
	UpdateRegistered(ctx context.Context, id string, student *models.RegisteredStudent) (bool, error)
	DeleteRegistered(ctx context.Context, id string) (bool, error)
}

// StudentRepository combines all registered-student operations.
type StudentRepository interface {
	StudentReader
	StudentWriter
}
