package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    models.Priority // Optional: empty means medium
	Status      string          // Optional: empty means pending
	Tag         *string
}

// ListTasksRequest selects and orders tasks.
// Nil filter fields place no constraint; set fields are combined with AND.
type ListTasksRequest struct {
	Status   *string
	Priority *string
	Tag      *string
	SortBy   database.SortField
}

// UpdateTaskRequest is a field patch.
// Pointer fields are optional - nil means don't update. The nullable columns
// use types.Optional so that "leave alone" and "clear" are distinct.
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description types.Optional[string]
	DueDate     types.Optional[time.Time]
	Priority    *models.Priority
	Status      *string
	Tag         types.Optional[string]
}

// IsEmpty reports whether the patch touches no field
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Priority == nil && r.Status == nil &&
		!r.Description.IsSet() && !r.DueDate.IsSet() && !r.Tag.IsSet()
}

// Option configures the service
type Option func(*service)

// WithClock sets the source of "today" for due date checks
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service interface
type service struct {
	store  database.DataStore
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new task service over the given store.
// The caller owns the store's lifetime.
func NewService(store database.DataStore, opts ...Option) Service {
	s := &service{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask handles task creation with validation and defaults
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	newTask, err := s.validateCreateTask(req)
	if err != nil {
		s.logger.Warn("task create rejected", "title", req.Title, "error", err)
		return nil, err
	}

	var created *models.Task
	err = s.store.WithTx(ctx, func(store database.TaskStore) error {
		var err error
		created, err = store.InsertTask(ctx, newTask)
		return err
	})
	if err != nil {
		s.logger.Error("task create failed", "title", req.Title, "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "id", created.ID, "title", created.Title)
	return created, nil
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, taskNotFound(taskID)
	}

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, mapStoreError(taskID, err)
	}
	return task, nil
}

// ListTasks retrieves tasks matching the filters in the requested order
func (s *service) ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error) {
	if !req.SortBy.Valid() {
		return nil, ErrInvalidSortField
	}

	filter := database.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
		Tag:      req.Tag,
	}
	tasks, err := s.store.ListTasks(ctx, filter, req.SortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CountTasks returns the number of stored tasks
func (s *service) CountTasks(ctx context.Context) (int, error) {
	return s.store.CountTasks(ctx)
}

// UpdateTask applies the supplied fields and returns the stored result
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, taskNotFound(req.TaskID)
	}

	var updated *models.Task
	err := s.store.WithTx(ctx, func(store database.TaskStore) error {
		current, err := store.GetTask(ctx, req.TaskID)
		if err != nil {
			return mapStoreError(req.TaskID, err)
		}

		if err := s.applyUpdate(current, req); err != nil {
			return err
		}

		if err := store.UpdateTask(ctx, current); err != nil {
			return mapStoreError(req.TaskID, err)
		}

		updated, err = store.GetTask(ctx, req.TaskID)
		return err
	})
	if err != nil {
		s.logFailure("task update", req.TaskID, err)
		if IsValidation(err) || IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated", "id", updated.ID)
	return updated, nil
}

// DeleteTask handles task deletion
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return taskNotFound(taskID)
	}

	err := s.store.WithTx(ctx, func(store database.TaskStore) error {
		if _, err := store.GetTask(ctx, taskID); err != nil {
			return mapStoreError(taskID, err)
		}
		if err := store.DeleteTask(ctx, taskID); err != nil {
			return mapStoreError(taskID, err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("task delete", taskID, err)
		if IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "id", taskID)
	return nil
}

// ============================================================================
// VALIDATION
// ============================================================================

// validateCreateTask checks the request and fills in defaults
func (s *service) validateCreateTask(req CreateTaskRequest) (database.NewTask, error) {
	if strings.TrimSpace(req.Title) == "" {
		return database.NewTask{}, ErrTitleRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return database.NewTask{}, ErrInvalidPriority
	}

	var due *time.Time
	if req.DueDate != nil {
		d := models.DateOf(*req.DueDate)
		if err := s.validateDueDate(d); err != nil {
			return database.NewTask{}, err
		}
		due = &d
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	return database.NewTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
		Tag:         req.Tag,
	}, nil
}

// validateDueDate rejects calendar days before today
func (s *service) validateDueDate(due time.Time) error {
	if models.IsBefore(due, s.now()) {
		return ErrDueDateInPast
	}
	return nil
}

// applyUpdate validates the patch and writes it into task
func (s *service) applyUpdate(task *models.Task, req UpdateTaskRequest) error {
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return ErrTitleRequired
		}
		task.Title = *req.Title
	}

	if req.Priority != nil {
		if !req.Priority.Valid() {
			return ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}

	if due, ok := req.DueDate.Get(); ok {
		d := models.DateOf(due)
		if err := s.validateDueDate(d); err != nil {
			return err
		}
		req.DueDate = types.Some(d)
	}

	if req.Status != nil {
		task.Status = *req.Status
	}

	req.Description.Apply(&task.Description)
	req.DueDate.Apply(&task.DueDate)
	req.Tag.Apply(&task.Tag)
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func taskNotFound(taskID int) error {
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
}

// mapStoreError turns a missing row into ErrTaskNotFound and passes anything else through
func mapStoreError(taskID int, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return taskNotFound(taskID)
	}
	return err
}

func (s *service) logFailure(op string, taskID int, err error) {
	if IsValidation(err) || IsNotFound(err) {
		s.logger.Warn(op+" rejected", "id", taskID, "error", err)
		return
	}
	s.logger.Error(op+" failed", "id", taskID, "error", err)
}
