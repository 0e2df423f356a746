package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error or panic, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		s := ns.String
		return &s
	}
	return nil
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// ptrToNull maps a nil pointer to SQL NULL
func ptrToNull(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// emptyToNull maps an empty string to SQL NULL
func emptyToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// dateToNull renders a due date as YYYY-MM-DD or SQL NULL
func dateToNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return models.FormatDate(*t)
}

// nullDate scans a DATE column. Drivers hand dates back as time.Time
// (pgx, and modernc for DATE-typed columns) or as text.
type nullDate struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner
func (nd *nullDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		nd.Time, nd.Valid = time.Time{}, false
		return nil
	case time.Time:
		nd.Time, nd.Valid = models.DateOf(v), true
		return nil
	case string:
		return nd.parse(v)
	case []byte:
		return nd.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into due date", src)
	}
}

func (nd *nullDate) parse(s string) error {
	if len(s) >= len(models.DateLayout) {
		if t, err := time.Parse(models.DateLayout, s[:len(models.DateLayout)]); err == nil {
			nd.Time, nd.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("cannot parse due date %q", s)
}

// Ptr returns the date or nil when NULL
func (nd nullDate) Ptr() *time.Time {
	if !nd.Valid {
		return nil
	}
	t := nd.Time
	return &t
}
