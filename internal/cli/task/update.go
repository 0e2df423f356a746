package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update the given fields of a task. Fields without a flag keep their value.

Examples:
  tasktrack task update 3 --title="Buy oat milk"
  tasktrack task update 3 --due=2030-05-01 --priority=high
  tasktrack task update 3 --clear-due --clear-tag
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("due", "", "New due date as YYYY-MM-DD (today or later)")
	cmd.Flags().String("priority", "", "New priority: "+models.PriorityNames())
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("tag", "", "New tag")

	cmd.Flags().Bool("clear-description", false, "Remove the description")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().Bool("clear-tag", false, "Remove the tag")
	cmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tag")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	taskID, err := cli.TaskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.Usage("INVALID_TASK_ID", err.Error(), "Usage: tasktrack task update <id> [flags]")
	}

	req, err := buildUpdateRequest(cmd, taskID)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "INVALID_INPUT"), err, "")
	}
	if req.IsEmpty() {
		return formatter.Usage("NO_UPDATES", "no fields to update",
			"Pass at least one of --title, --description, --due, --priority, --status, --tag or a --clear-* flag")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_UPDATE_ERROR"), err, "")
	}

	if err := outputTask(formatter, task, fmt.Sprintf("Task %d updated successfully", task.ID)); err != nil {
		return err
	}
	if formatter.JSON || formatter.Quiet {
		return nil
	}
	return printTaskTable(ctx, cliInstance)
}

// buildUpdateRequest turns the changed flags into a patch
func buildUpdateRequest(cmd *cobra.Command, taskID int) (taskservice.UpdateTaskRequest, error) {
	flags := cmd.Flags()
	req := taskservice.UpdateTaskRequest{TaskID: taskID}

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}

	if flags.Changed("priority") {
		priorityFlag, _ := flags.GetString("priority")
		priority, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return req, err
		}
		req.Priority = &priority
	}

	if flags.Changed("status") {
		status, _ := flags.GetString("status")
		req.Status = &status
	}

	if flags.Changed("description") {
		value, _ := flags.GetString("description")
		description, err := cli.ReadDescription(value, cmd.InOrStdin())
		if err != nil {
			return req, &cli.CommandError{Code: cli.ExitDataErr, Err: err}
		}
		req.Description = types.Some(description)
	} else if reset, _ := flags.GetBool("clear-description"); reset {
		req.Description = types.Null[string]()
	}

	if flags.Changed("due") {
		value, _ := flags.GetString("due")
		due, err := cli.ParseDueDate(value)
		if err != nil {
			return req, err
		}
		req.DueDate = types.Some(due)
	} else if reset, _ := flags.GetBool("clear-due"); reset {
		req.DueDate = types.Null[time.Time]()
	}

	if flags.Changed("tag") {
		tag, _ := flags.GetString("tag")
		req.Tag = types.Some(tag)
	} else if reset, _ := flags.GetBool("clear-tag"); reset {
		req.Tag = types.Null[string]()
	}

	return req, nil
}
