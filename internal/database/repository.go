package database

import (
	"context"
	"database/sql"
)

// Repository is the DataStore backed by a *sql.DB.
// The caller owns the handle and closes it.
type Repository struct {
	*TaskRepo
	db      *sql.DB
	dialect Dialect
}

// NewRepository creates a new Repository wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	if dialect == "" {
		dialect = DialectSQLite
	}
	return &Repository{
		TaskRepo: &TaskRepo{db: db, dialect: dialect},
		db:       db,
		dialect:  dialect,
	}
}

// WithTx runs fn with a TaskStore bound to a new transaction
func (r *Repository) WithTx(ctx context.Context, fn func(TaskStore) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&TaskRepo{db: tx, dialect: r.dialect})
	})
}

// Dialect reports the backend this repository talks to
func (r *Repository) Dialect() Dialect {
	return r.dialect
}
