package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create registered students table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS registered_students (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			middle_name TEXT,
			last_name TEXT NOT NULL,
			gender TEXT,
			birth_date TEXT,
			age INTEGER,
			contact TEXT,
			guardian_name TEXT,
			guardian_contact TEXT
		)
	`)
	if err != nil {
		return err
	}

	// Create enrolled students table; the id is shared with the registration
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS enrolled_students (
			id TEXT PRIMARY KEY,
			grade_level TEXT NOT NULL,
			strand TEXT NOT NULL,
			FOREIGN KEY(id) REFERENCES registered_students(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	return nil
}
