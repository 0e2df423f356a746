// Package database handles the initialization and connection to the task db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Options selects the backend and connection target
type Options struct {
	Dialect Dialect
	// DSN is a file path for SQLite (empty = ~/.tasktrack/tasks.db) or a
	// connection URL for PostgreSQL.
	DSN string
}

// DefaultSQLitePath returns ~/.tasktrack/tasks.db
func DefaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tasktrack", "tasks.db"), nil
}

// InitDB opens the database, applies connection settings and creates the schema
func InitDB(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.Dialect == "" {
		opts.Dialect = DialectSQLite
	}
	if !opts.Dialect.Valid() {
		return nil, fmt.Errorf("unsupported database driver %q", opts.Dialect)
	}

	dsn := opts.DSN
	switch opts.Dialect {
	case DialectSQLite:
		if dsn == "" {
			path, err := DefaultSQLitePath()
			if err != nil {
				return nil, err
			}
			dsn = path
		}
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	case DialectPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres driver requires a connection url")
		}
	}

	db, err := sql.Open(opts.Dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if opts.Dialect == DialectSQLite {
		if err := applySQLitePragmas(ctx, db); err != nil {
			closeDB(db)
			return nil, err
		}
		// SQLite benefits from a single writer connection, and :memory:
		// databases exist per connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := RunMigrations(ctx, db, opts.Dialect); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Debug("database ready", "driver", opts.Dialect, "dsn", redactDSN(opts.Dialect, dsn))
	return db, nil
}

func applySQLitePragmas(ctx context.Context, db *sql.DB) error {
	// WAL for readers alongside the writer
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		slog.Error("Failed to enable WAL mode", "error", err)
		return err
	}

	// SQLite will retry for this duration
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		slog.Error("Failed to set busy timeout", "error", err)
		return err
	}
	return nil
}

func closeDB(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}

// redactDSN keeps credentials out of the log
func redactDSN(d Dialect, dsn string) string {
	if d == DialectPostgres {
		return "postgres://***"
	}
	return dsn
}
