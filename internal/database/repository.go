package database

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*StudentRepo
	*EnrollmentRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	return &Repository{
		StudentRepo:    &StudentRepo{db: db, sb: sb},
		EnrollmentRepo: &EnrollmentRepo{db: db, sb: sb},
	}
}

var _ DataStore = (*Repository)(nil)
