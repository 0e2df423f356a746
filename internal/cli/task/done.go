package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as done",
		Long:  "Set a task's status to done. With --undo the task goes back to pending.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDone,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("undo", false, "Mark the task as pending again")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	taskID, err := cli.TaskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.Usage("INVALID_TASK_ID", err.Error(), "Usage: tasktrack task done <id>")
	}

	status := models.StatusDone
	if undo, _ := cmd.Flags().GetBool("undo"); undo {
		status = models.StatusPending
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, taskservice.UpdateTaskRequest{
		TaskID: taskID,
		Status: &status,
	})
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_UPDATE_ERROR"), err, "")
	}

	if err := outputTask(formatter, task, fmt.Sprintf("Task %d marked %s", task.ID, task.Status)); err != nil {
		return err
	}
	if formatter.JSON || formatter.Quiet {
		return nil
	}
	return printTaskTable(ctx, cliInstance)
}
