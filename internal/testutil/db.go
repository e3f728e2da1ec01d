// Package testutil provides shared fixtures for package tests
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// NewStudent returns a valid registration, born 2009-06-01
func NewStudent(first, last string) *models.RegisteredStudent {
	return &models.RegisteredStudent{
		FirstName:       first,
		LastName:        last,
		Gender:          "Female",
		BirthDate:       "2009-06-01",
		Contact:         "09171234567",
		GuardianName:    "Guardian " + last,
		GuardianContact: "09181234567",
	}
}

// CreateTestStudent inserts a registration and returns its generated ID
func CreateTestStudent(t *testing.T, db *sql.DB, first, last string) string {
	t.Helper()
	id, err := database.NewRepository(db).AddRegistered(context.Background(), NewStudent(first, last))
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return id
}

// CreateTestEnrollment enrolls an existing registration
func CreateTestEnrollment(t *testing.T, db *sql.DB, id, grade, strand string) {
	t.Helper()
	_, err := database.NewRepository(db).Enroll(context.Background(), &models.EnrolledStudent{
		ID:         id,
		GradeLevel: grade,
		Strand:     strand,
	})
	if err != nil {
		t.Fatalf("Failed to create test enrollment: %v", err)
	}
}
