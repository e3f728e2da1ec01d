package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "students.db")
	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { newDB.Close() })
	return newDB
}

// ============================================================================
// FIXTURES
// ============================================================================

// newStudent returns a valid registration with the given names
func newStudent(first, middle, last string) *models.RegisteredStudent {
	return &models.RegisteredStudent{
		FirstName:       first,
		MiddleName:      middle,
		LastName:        last,
		Gender:          "Female",
		BirthDate:       "2008-03-15",
		Age:             17,
		Contact:         "09171234567",
		GuardianName:    "Maria " + last,
		GuardianContact: "09181234567",
	}
}

// mustAddStudent inserts a student and returns its id
func mustAddStudent(t *testing.T, repo *Repository, s *models.RegisteredStudent) string {
	t.Helper()
	id, err := repo.AddRegistered(context.Background(), s)
	if err != nil {
		t.Fatalf("Failed to add student: %v", err)
	}
	return id
}

// mustEnroll enrolls an existing student
func mustEnroll(t *testing.T, repo *Repository, id, grade, strand string) {
	t.Helper()
	_, err := repo.Enroll(context.Background(), &models.EnrolledStudent{ID: id, GradeLevel: grade, Strand: strand})
	if err != nil {
		t.Fatalf("Failed to enroll %s: %v", id, err)
	}
}
