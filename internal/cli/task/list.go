package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered and sorted.

Filters combine: --priority=high --tag=home shows only high priority tasks tagged home.

Examples:
  tasktrack task list
  tasktrack task list --status=pending --sort=due_date
  tasktrack task list --priority=high --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only tasks with this status")
	cmd.Flags().String("priority", "", "Only tasks with this priority")
	cmd.Flags().String("tag", "", "Only tasks with this tag")
	cmd.Flags().String("sort", "", "Sort by due_date or priority (default: creation order)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	req := taskservice.ListTasksRequest{}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		req.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priorityFlag, _ := cmd.Flags().GetString("priority")
		priority, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return formatter.Fail("INVALID_PRIORITY", err, "")
		}
		p := string(priority)
		req.Priority = &p
	}
	if cmd.Flags().Changed("tag") {
		tag, _ := cmd.Flags().GetString("tag")
		req.Tag = &tag
	}

	sortFlag, _ := cmd.Flags().GetString("sort")
	sortBy, err := cli.ParseSortField(sortFlag)
	if err != nil {
		return formatter.Fail("INVALID_SORT_FIELD", err, "Sort by due_date or priority")
	}
	req.SortBy = sortBy

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, req)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_LIST_ERROR"), err, "")
	}

	if formatter.Quiet {
		for _, task := range tasks {
			fmt.Printf("%d\n", task.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONObject(map[string]any{
			"success": true,
			"tasks":   tasks,
			"count":   len(tasks),
		})
	}

	fmt.Println(styles.TaskTable(tasks, cliInstance.DateFormat()))
	return nil
}
