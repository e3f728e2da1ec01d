package app

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	repo := setupTestRepo(t)

	app := New(repo)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.StudentService == nil {
		t.Error("Expected StudentService to be initialized")
	}
	if app.Repo() != repo {
		t.Error("Expected Repo to return the wrapped repository")
	}
}

func TestNew_Options(t *testing.T) {
	repo := setupTestRepo(t)

	var titles []string
	notifier := student.NotifierFunc(func(_ student.Kind, title, _ string) {
		titles = append(titles, title)
	})
	clock := func() time.Time { return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) }

	app := New(repo, WithNotifier(notifier), WithClock(clock))

	age, ok := app.StudentService.CalculateAge("2010-06-01")
	if !ok || age != 16 {
		t.Errorf("CalculateAge = (%d, %v), want (16, true) from injected clock", age, ok)
	}

	_, err := app.StudentService.DropEnrollment(context.Background(), "S000001")
	if err == nil {
		t.Error("Expected drop of unknown enrollment to fail")
	}
	if len(titles) != 1 || titles[0] != "Not Found" {
		t.Errorf("Expected one Not Found notification, got %v", titles)
	}
}

func TestClose(t *testing.T) {
	app := New(setupTestRepo(t))

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
