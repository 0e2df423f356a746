package cli

import (
	"errors"

	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations, malformed task IDs.
	ExitUsage = 2

	// ExitNotFound indicates the requested task does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data, such as unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, past due dates, unknown priorities or sort fields.
	ExitValidation = 5
)

// CommandError carries the exit code chosen for a failed command.
// The message has already been reported to the user when this is returned.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}

	switch {
	case taskservice.IsValidation(err):
		return ExitValidation
	case taskservice.IsNotFound(err):
		return ExitNotFound
	default:
		return ExitError
	}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
