package cli

import (
	"database/sql"
	"io"
	"testing"

	"github.com/thenoetrevino/shsenroll/internal/app"
	clipkg "github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/database"
	"github.com/thenoetrevino/shsenroll/internal/notifications"
	"github.com/thenoetrevino/shsenroll/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and a CLI
// instance bound to it. Notifications are discarded.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *clipkg.CLI) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	colors := config.DefaultColorScheme()
	notifier := notifications.NewTerminal(io.Discard, colors)
	appInstance := app.New(database.NewRepository(db), app.WithNotifier(notifier))

	return db, clipkg.New(appInstance, notifier, colors)
}

// CreateTestStudent wraps testutil.CreateTestStudent for CLI tests
func CreateTestStudent(t *testing.T, db *sql.DB, first, last string) string {
	t.Helper()
	return testutil.CreateTestStudent(t, db, first, last)
}

// CreateTestEnrollment wraps testutil.CreateTestEnrollment for CLI tests
func CreateTestEnrollment(t *testing.T, db *sql.DB, id, grade, strand string) {
	t.Helper()
	testutil.CreateTestEnrollment(t, db, id, grade, strand)
}
