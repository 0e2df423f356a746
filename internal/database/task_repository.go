package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SortField selects the ordering of ListTasks
type SortField string

const (
	SortNone       SortField = ""
	SortByDueDate  SortField = "due_date"
	SortByPriority SortField = "priority"
)

// Valid reports whether s is a known ordering
func (s SortField) Valid() bool {
	return s == SortNone || s == SortByDueDate || s == SortByPriority
}

// TaskFilter holds optional equality predicates, combined with AND.
// A nil field places no constraint on that column.
type TaskFilter struct {
	Status   *string
	Priority *string
	Tag      *string
}

// NewTask is the row written by InsertTask
type NewTask struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    models.Priority
	Status      string
	Tag         *string
}

// TaskRepo handles pure data access for tasks.
// No business logic, no validation - just database operations.
type TaskRepo struct {
	db      DBTX
	dialect Dialect
}

const taskColumns = `id, title, description, due_date, priority, status, tag`

// Unknown priorities (including NULL) rank after low
const priorityOrder = ` ORDER BY CASE priority
	WHEN 'high' THEN 1
	WHEN 'medium' THEN 2
	WHEN 'low' THEN 3
	ELSE 4 END, id ASC`

// orderClauses keep ties in id order so both sorts are stable
var orderClauses = map[SortField]string{
	SortNone:       ` ORDER BY id`,
	SortByDueDate:  ` ORDER BY due_date IS NULL, due_date ASC, id ASC`,
	SortByPriority: priorityOrder,
}

func (r *TaskRepo) q(query string) string {
	return r.dialect.Rebind(query)
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// InsertTask inserts a row and returns it with the assigned ID
func (r *TaskRepo) InsertTask(ctx context.Context, task NewTask) (*models.Task, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.q(
		`INSERT INTO tasks (title, description, due_date, priority, status, tag)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`),
		task.Title,
		ptrToNull(task.Description),
		dateToNull(task.DueDate),
		emptyToNull(string(task.Priority)),
		task.Status,
		ptrToNull(task.Tag),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return r.GetTask(ctx, int(id))
}

// GetTask retrieves a task by ID. A missing row yields an error wrapping sql.ErrNoRows.
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, r.q(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`), id)
	task, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// ListTasks scans the table with the given filters and ordering
func (r *TaskRepo) ListTasks(ctx context.Context, filter TaskFilter, sortBy SortField) ([]*models.Task, error) {
	order, ok := orderClauses[sortBy]
	if !ok {
		return nil, fmt.Errorf("unknown sort field %q", sortBy)
	}

	var (
		conditions []string
		args       []any
	)
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *filter.Priority)
	}
	if filter.Tag != nil {
		conditions = append(conditions, "tag = ?")
		args = append(args, *filter.Tag)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += order

	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// CountTasks returns the number of stored tasks
func (r *TaskRepo) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// UpdateTask writes every mutable column of task
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) error {
	result, err := r.db.ExecContext(ctx, r.q(
		`UPDATE tasks
		 SET title = ?, description = ?, due_date = ?, priority = ?, status = ?, tag = ?
		 WHERE id = ?`),
		task.Title,
		ptrToNull(task.Description),
		dateToNull(task.DueDate),
		emptyToNull(string(task.Priority)),
		task.Status,
		ptrToNull(task.Tag),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return requireAffected(result, task.ID)
}

// DeleteTask removes a task
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, r.q(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return requireAffected(result, id)
}

// ============================================================================
// SCANNING
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		id                                 int64
		title                              string
		description, priority, status, tag sql.NullString
		due                                nullDate
	)
	if err := row.Scan(&id, &title, &description, &due, &priority, &status, &tag); err != nil {
		return nil, err
	}

	return &models.Task{
		ID:          int(id),
		Title:       title,
		Description: nullStringToPtr(description),
		DueDate:     due.Ptr(),
		Priority:    models.Priority(nullStringToString(priority)),
		Status:      nullStringToString(status),
		Tag:         nullStringToPtr(tag),
	}, nil
}

func requireAffected(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for task %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, sql.ErrNoRows)
	}
	return nil
}
