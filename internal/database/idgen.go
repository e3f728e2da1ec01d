package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/thenoetrevino/shsenroll/internal/models"
)

var studentIDPattern = regexp.MustCompile(`^` + models.StudentIDPrefix + `(\d{6})$`)

// NextStudentID returns the id that follows lastID.
// An empty or malformed lastID restarts the sequence at S000001.
func NextStudentID(lastID string) string {
	next := 1
	if m := studentIDPattern.FindStringSubmatch(lastID); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			next = n + 1
		}
	}
	return FormatStudentID(next)
}

// FormatStudentID renders a sequence number as a student id
func FormatStudentID(seq int) string {
	return fmt.Sprintf("%s%0*d", models.StudentIDPrefix, models.StudentIDDigits, seq)
}

// IsStudentID reports whether id has the generated S + 6 digit shape
func IsStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// generateStudentID reads the lexicographically last id inside tx.
// Fixed-width zero padding makes string order match numeric order.
func generateStudentID(ctx context.Context, tx *sql.Tx) (string, error) {
	var lastID string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM registered_students ORDER BY id DESC LIMIT 1`,
	).Scan(&lastID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", classifyError(err, "failed to read last student id")
	}
	return NextStudentID(lastID), nil
}
