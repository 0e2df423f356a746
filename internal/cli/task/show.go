package task

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
	"github.com/thenoetrevino/tasktrack/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task. Descriptions are rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	taskID, err := cli.TaskIDFromArgs(cmd, args)
	if err != nil {
		return formatter.Usage("INVALID_TASK_ID", err.Error(),
			"Usage: tasktrack task show <id> or tasktrack task show --id=<id>")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(cli.ErrorCode(err, "TASK_FETCH_ERROR"), err,
			"Use 'tasktrack task list' to see available tasks")
	}

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

	fmt.Println(renderTaskCard(task, cliInstance.DateFormat()))
	return nil
}

func renderTaskCard(task *models.Task, dateLayout string) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title)))
	content.WriteString("\n\n")

	metaLine := fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.LabelStyle.Render("Priority:"),
		styles.PriorityStyle(task.Priority).Render(string(task.Priority)),
		styles.LabelStyle.Render("Status:"),
		styles.ValueStyle.Render(task.Status),
		styles.LabelStyle.Render("Due:"),
		styles.ValueStyle.Render(styles.FormatDue(task.DueDate, dateLayout)),
	)
	content.WriteString(metaLine)

	if task.Tag != nil {
		content.WriteString("\n")
		content.WriteString(styles.LabelStyle.Render("Tag:") + " " + styles.ValueStyle.Render(*task.Tag))
	}

	if task.Description != nil && *task.Description != "" {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(*task.Description, styles.CardWidth-6))
	}

	return styles.CardStyle.Render(content.String())
}

var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown falls back to the raw text when glamour fails
func renderMarkdown(text string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
