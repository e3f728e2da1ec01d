package database

import (
	"context"
	"testing"
)

func TestNextStudentID(t *testing.T) {
	tests := []struct {
		name   string
		lastID string
		want   string
	}{
		{"empty table", "", "S000001"},
		{"sequential", "S000042", "S000043"},
		{"first id", "S000001", "S000002"},
		{"carry", "S000999", "S001000"},
		{"unrecognized prefix", "X000042", "S000001"},
		{"too few digits", "S42", "S000001"},
		{"non numeric suffix", "S00004A", "S000001"},
		{"seven digits", "S0000042", "S000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStudentID(tt.lastID); got != tt.want {
				t.Errorf("NextStudentID(%q) = %q, want %q", tt.lastID, got, tt.want)
			}
		})
	}
}

func TestIsStudentID(t *testing.T) {
	if !IsStudentID("S000123") {
		t.Error("Expected S000123 to be a student id")
	}
	for _, id := range []string{"", "S123", "s000123", "S000123 "} {
		if IsStudentID(id) {
			t.Errorf("Expected %q not to be a student id", id)
		}
	}
}

func TestAddRegistered_GeneratesSequentialIDs(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	first := mustAddStudent(t, repo, newStudent("Ana", "", "Cruz"))
	second := mustAddStudent(t, repo, newStudent("Ben", "", "Reyes"))

	if first != "S000001" {
		t.Errorf("Expected first id S000001, got %s", first)
	}
	if second != "S000002" {
		t.Errorf("Expected second id S000002, got %s", second)
	}
}

func TestAddRegistered_ContinuesAfterExplicitID(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	explicit := newStudent("Ana", "", "Cruz")
	explicit.ID = "S000042"
	mustAddStudent(t, repo, explicit)

	next := mustAddStudent(t, repo, newStudent("Ben", "", "Reyes"))
	if next != "S000043" {
		t.Errorf("Expected S000043 after S000042, got %s", next)
	}
}

func TestAddRegistered_RestartsAfterForeignID(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	// "Z..." sorts after every "S..." id, so it becomes the last id
	foreign := newStudent("Ana", "", "Cruz")
	foreign.ID = "Z-legacy"
	mustAddStudent(t, repo, foreign)

	id, err := repo.AddRegistered(context.Background(), newStudent("Ben", "", "Reyes"))
	if err != nil {
		t.Fatalf("Failed to add student: %v", err)
	}
	if id != "S000001" {
		t.Errorf("Expected restart at S000001, got %s", id)
	}
}
