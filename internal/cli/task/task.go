package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// openCLI resolves the CLI for cmd, reporting failures through formatter
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.Fail("INITIALIZATION_ERROR", err, "Check the database settings in your config file")
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// outputTask prints a single task in the formatter's mode
func outputTask(formatter *cli.OutputFormatter, task *models.Task, message string) error {
	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONObject(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	fmt.Println(styles.SuccessStyle.Render("✓ " + message))
	return nil
}

// printTaskTable re-lists every task so the user sees the store after a change
func printTaskTable(ctx context.Context, cliInstance *cli.CLI) error {
	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, taskservice.ListTasksRequest{})
	if err != nil {
		return err
	}
	fmt.Println(styles.TaskTable(tasks, cliInstance.DateFormat()))
	return nil
}
