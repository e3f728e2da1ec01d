package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/thenoetrevino/shsenroll/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", models.ErrStorage, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", models.ErrStorage, err)
	}

	return nil
}

// classifyError maps a driver error onto the model error kinds.
// Primary key and unique collisions become ErrConstraint, foreign key
// failures ErrNotFound, everything else ErrStorage.
func classifyError(err error, action string) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %s: %w", models.ErrConstraint, action, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s: %w", models.ErrNotFound, action, err)
		}
		// Without extended result codes only the primary code is reported
		if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			if strings.Contains(err.Error(), "FOREIGN KEY") {
				return fmt.Errorf("%w: %s: %w", models.ErrNotFound, action, err)
			}
			return fmt.Errorf("%w: %s: %w", models.ErrConstraint, action, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", models.ErrStorage, action, err)
}

// nullIfEmpty stores blank optional text as NULL
func nullIfEmpty(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullInt64ToInt converts sql.NullInt64 to int, zero when NULL
func nullInt64ToInt(nv sql.NullInt64) int {
	if nv.Valid {
		return int(nv.Int64)
	}
	return 0
}
