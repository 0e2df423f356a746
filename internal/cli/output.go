package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// FormatterFromFlags reads the --json and --quiet flags of cmd
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONObject(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONObject writes v as a single JSON line to stdout
func (f *OutputFormatter) JSONObject(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.JSONObject(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	return writeHumanError(os.Stderr, message, suggestion)
}

// Fail reports err under code and returns a CommandError for the caller to return.
// The exit code follows the error category.
func (f *OutputFormatter) Fail(code string, err error, suggestion string) error {
	return f.report(code, err, suggestion, ExitCode(err))
}

// Usage reports incorrect command usage
func (f *OutputFormatter) Usage(code string, message string, suggestion string) error {
	return f.report(code, errors.New(message), suggestion, ExitUsage)
}

func (f *OutputFormatter) report(code string, err error, suggestion string, exitCode int) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}

// ErrorCode picks the machine-readable code for a service error
func ErrorCode(err error, fallback string) string {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, taskservice.ErrTitleRequired):
		return "TITLE_REQUIRED"
	case errors.Is(err, taskservice.ErrDueDateInPast):
		return "DUE_DATE_IN_PAST"
	case errors.Is(err, taskservice.ErrInvalidPriority):
		return "INVALID_PRIORITY"
	case errors.Is(err, taskservice.ErrInvalidSortField):
		return "INVALID_SORT_FIELD"
	case taskservice.IsValidation(err):
		return "VALIDATION_ERROR"
	default:
		return fallback
	}
}

func writeHumanError(w io.Writer, message, suggestion string) error {
	if _, err := fmt.Fprintf(w, "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(w, "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	fmt.Printf("%+v\n", data)
	return nil
}
