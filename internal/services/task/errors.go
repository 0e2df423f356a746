package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// Error categories. Every sentinel below matches exactly one of them with errors.Is.
var (
	// ErrValidation marks input that violates a field invariant
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an operation on an id that does not exist
	ErrNotFound = errors.New("not found")
)

// Validation errors
var (
	ErrTitleRequired    = fmt.Errorf("%w: title required", ErrValidation)
	ErrDueDateInPast    = fmt.Errorf("%w: due date in past", ErrValidation)
	ErrInvalidPriority  = fmt.Errorf("%w: priority must be one of %s", ErrValidation, models.PriorityNames())
	ErrInvalidSortField = fmt.Errorf("%w: sort field must be one of due_date, priority", ErrValidation)
	ErrInvalidTaskID    = fmt.Errorf("%w: invalid task ID", ErrValidation)
)

// Lookup errors
var (
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
)

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
