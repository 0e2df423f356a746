package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// ParsePriority maps a priority flag to its value, case-insensitively
func ParsePriority(priority string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(strings.TrimSpace(priority)))
	if !p.Valid() {
		return "", fmt.Errorf("%w, got %q", taskservice.ErrInvalidPriority, priority)
	}
	return p, nil
}

// ParseDueDate parses a YYYY-MM-DD flag value
func ParseDueDate(value string) (time.Time, error) {
	due, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", taskservice.ErrValidation, err)
	}
	return due, nil
}

// ParseSortField maps the --sort flag to a store ordering
func ParseSortField(value string) (database.SortField, error) {
	field := database.SortField(strings.ToLower(strings.TrimSpace(value)))
	if !field.Valid() {
		return database.SortNone, fmt.Errorf("%w, got %q", taskservice.ErrInvalidSortField, value)
	}
	return field, nil
}

// TaskIDFromArgs reads the task ID from the first positional argument or the --id flag
func TaskIDFromArgs(cmd *cobra.Command, args []string) (int, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else if cmd.Flags().Lookup("id") != nil && cmd.Flags().Changed("id") {
		id, _ := cmd.Flags().GetInt("id")
		raw = strconv.Itoa(id)
	}

	if raw == "" {
		return 0, fmt.Errorf("%w: task ID is required", taskservice.ErrInvalidTaskID)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", taskservice.ErrInvalidTaskID, raw)
	}
	return id, nil
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
