package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title string, priority models.Priority) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, priority)
}

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// CountTasks wraps testutil.CountRows for CLI tests
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	return testutil.CountRows(t, db)
}
