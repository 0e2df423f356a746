package database

import (
	"context"
	"database/sql"
	"fmt"
)

var tasksTableDDL = map[Dialect]string{
	DialectSQLite: `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			due_date DATE,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			tag TEXT
		)`,
	DialectPostgres: `
		CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			due_date DATE,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			tag TEXT
		)`,
}

// RunMigrations creates the schema if it does not exist yet. It is safe to
// call on every start; existing tables are never altered.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	ddl, ok := tasksTableDDL[d]
	if !ok {
		return fmt.Errorf("no schema for driver %q", d)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	// Filter columns used by the list view
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_status_priority
		ON tasks(status, priority)
	`)
	if err != nil {
		return fmt.Errorf("failed to create tasks index: %w", err)
	}

	return nil
}
