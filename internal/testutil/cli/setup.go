package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
// The App's clock is pinned to testutil.Today.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repo := database.NewRepository(db, database.DialectSQLite)
	appInstance := app.New(repo, app.WithClock(testutil.FixedClock))

	return db, appInstance
}
