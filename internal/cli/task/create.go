package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  tasktrack task create --title="Buy milk"

  # JSON output for agents
  tasktrack task create --title="Buy milk" --priority=low --json

  # Quiet mode for bash capture
  TASK_ID=$(tasktrack task create --title="Buy milk" --quiet)

  # Full example with all options
  tasktrack task create \
    --title="File taxes" \
    --description="Receipts are in the blue folder" \
    --due=2030-04-15 \
    --priority=high \
    --tag=home
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "title", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("due", "", "Due date as YYYY-MM-DD (today or later)")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: "+models.PriorityNames())
	cmd.Flags().String("status", models.StatusPending, "Initial status")
	cmd.Flags().String("tag", "", "Free-form tag")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	dueFlag, _ := cmd.Flags().GetString("due")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	status, _ := cmd.Flags().GetString("status")
	tag, _ := cmd.Flags().GetString("tag")

	req := taskservice.CreateTaskRequest{
		Title:  title,
		Status: status,
	}

	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		return formatter.Fail("INVALID_PRIORITY", err, "Valid priorities are: "+models.PriorityNames())
	}
	req.Priority = priority

	if dueFlag != "" {
		due, err := cli.ParseDueDate(dueFlag)
		if err != nil {
			return formatter.Fail("INVALID_DUE_DATE", err, "Use the YYYY-MM-DD format, e.g. --due=2030-04-15")
		}
		req.DueDate = &due
	}

	// Handle description from stdin
	description, err := cli.ReadDescription(descriptionFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail("STDIN_READ_ERROR", &cli.CommandError{Code: cli.ExitDataErr, Err: err}, "")
	}
	if description != "" {
		req.Description = &description
	}
	if cmd.Flags().Changed("tag") && tag != "" {
		req.Tag = &tag
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_CREATE_ERROR"), err, "")
	}

	if err := outputTask(formatter, task, fmt.Sprintf("Task '%s' created successfully (ID: %d)", task.Title, task.ID)); err != nil {
		return err
	}
	if formatter.JSON || formatter.Quiet {
		return nil
	}
	return printTaskTable(ctx, cliInstance)
}
