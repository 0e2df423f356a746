package database

import (
	"context"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter, sortBy SortField) ([]*models.Task, error)
	CountTasks(ctx context.Context) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	InsertTask(ctx context.Context, task NewTask) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int) error
}

// TaskStore combines all task-related operations.
type TaskStore interface {
	TaskReader
	TaskWriter
}
