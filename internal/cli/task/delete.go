package task

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")

	taskID, err := cli.TaskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.Usage("INVALID_TASK_ID", err.Error(), "Usage: tasktrack task delete <id>")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	// Get task details for confirmation
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_FETCH_ERROR"), err, "")
	}

	// Ask for confirmation unless force or machine-readable output
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete task #%d: '%s'? (y/N): ", taskID, task.Title)
		if !confirmed(cmd) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
		return formatter.Fail(cli.ErrorCode(err, "DELETE_ERROR"), err, "")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONObject(map[string]any{
			"success": true,
			"task_id": taskID,
		})
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Task %d deleted successfully", taskID)))
	return printTaskTable(ctx, cliInstance)
}

func confirmed(cmd *cobra.Command) bool {
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
