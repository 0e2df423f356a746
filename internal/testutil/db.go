package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	_ "modernc.org/sqlite"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// Today is the calendar day returned by FixedClock
var Today = time.Date(2030, time.June, 15, 9, 30, 0, 0, time.UTC)

// FixedClock always reports Today
func FixedClock() time.Time {
	return Today
}

// Day returns Today shifted by the given number of days
func Day(offset int) time.Time {
	return models.DateOf(Today).AddDate(0, 0, offset)
}

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	if err := database.RunMigrations(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestTask inserts a task row directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string, priority models.Priority) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (title, priority, status) VALUES (?, ?, ?)`,
		title, string(priority), models.StatusPending)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get task ID: %v", err)
	}
	return int(id)
}

// CountRows returns the number of rows in the tasks table
func CountRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}
