package database

import "context"

// DataStore is the persistence handle the service layer depends on.
// Reads and writes made through the TaskStore passed to WithTx's callback
// share one transaction, committed only if the callback returns nil.
type DataStore interface {
	TaskStore
	WithTx(ctx context.Context, fn func(TaskStore) error) error
}
