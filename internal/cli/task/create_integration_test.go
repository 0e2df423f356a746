package task

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
	"github.com/thenoetrevino/tasktrack/internal/testutil/cli"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var cmdErr *clipkg.CommandError
	require.True(t, errors.As(err, &cmdErr), "expected a CommandError, got %v", err)
	return cmdErr.Code
}

func TestCreateTask_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("human output re-lists tasks", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Buy milk", "--priority", "low"})

		require.NoError(t, err)
		assert.Contains(t, output, "Task 'Buy milk' created successfully")
		assert.Contains(t, output, "Priority")
		assert.Equal(t, 1, cli.CountTasks(t, db))
	})

	t.Run("quiet prints only the id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Quiet task", "--quiet"})

		require.NoError(t, err)
		assert.Regexp(t, `^\d+\n$`, output)
	})

	t.Run("json with every field", func(t *testing.T) {
		due := models.FormatDate(testutil.Day(30))
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "File taxes",
			"--description", "receipts in the blue folder",
			"--due", due,
			"--priority", "HIGH",
			"--tag", "home",
			"--json",
		})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		task := result["task"].(map[string]any)
		assert.Equal(t, "File taxes", task["title"])
		assert.Equal(t, "receipts in the blue folder", task["description"])
		assert.Equal(t, due, task["due_date"])
		assert.Equal(t, "high", task["priority"])
		assert.Equal(t, "pending", task["status"])
		assert.Equal(t, "home", task["tag"])
	})

	t.Run("description from stdin", func(t *testing.T) {
		output, err := cli.ExecuteCLICommandWithInput(t, app, CreateCmd(),
			[]string{"--title", "From stdin", "--description", "-", "--json"}, "line one\nline two\n")
		require.NoError(t, err)

		task := cli.ParseJSON(t, output)["task"].(map[string]any)
		assert.Equal(t, "line one\nline two", task["description"])
	})
}

func TestCreateTask_Negative(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"blank title", []string{"--title", "  "}, "TITLE_REQUIRED"},
		{"due yesterday", []string{"--title", "late", "--due", models.FormatDate(testutil.Day(-1))}, "DUE_DATE_IN_PAST"},
		{"malformed due", []string{"--title", "late", "--due", "15.06.2030"}, "INVALID_DUE_DATE"},
		{"unknown priority", []string{"--title", "odd", "--priority", "urgent"}, "INVALID_PRIORITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))

			require.Error(t, err)
			assert.Equal(t, clipkg.ExitValidation, exitCode(t, err))

			result := cli.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, tt.wantCode, result["error"].(map[string]any)["code"])
			assert.Zero(t, cli.CountTasks(t, db), "nothing may be persisted")
		})
	}

	t.Run("missing title flag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--priority", "low"})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "title"), "got %v", err)
	})
}

func TestCreateTask_IDsAreUnique(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", fmt.Sprintf("task %d", i), "--quiet"})
		require.NoError(t, err)
		id := strings.TrimSpace(output)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
