package styles

import (
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/tasktrack/internal/models"
)

const (
	colorAccent = "#7D56F4"
	colorTitle  = "#FAFAFA"
	colorSubtle = "#6C6C6C"
	colorNormal = "#D0D0D0"
	colorHigh   = "#FF5F87"
	colorMedium = "#FFAF5F"
	colorLow    = "#5FAFFF"
	colorDone   = "#5FD787"
)

var (
	// Card styles
	CardWidth = 80
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(1, 2).
			Width(CardWidth)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorTitle))
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSubtle))
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNormal))
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true).
			MarginTop(1)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorDone))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNormal)).
			Padding(0, 1)
)

// Columns shown by TaskTable, in order
var TableHeaders = []string{"ID", "Title", "Description", "Due", "Priority", "Status", "Tag"}

const (
	priorityColumn = 4
	statusColumn   = 5
	descriptionMax = 40
)

// PriorityStyle colors a priority label
func PriorityStyle(p models.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch p {
	case models.PriorityHigh:
		return base.Foreground(lipgloss.Color(colorHigh))
	case models.PriorityMedium:
		return base.Foreground(lipgloss.Color(colorMedium))
	case models.PriorityLow:
		return base.Foreground(lipgloss.Color(colorLow))
	default:
		return base.Foreground(lipgloss.Color(colorSubtle))
	}
}

// FormatDue renders a due date with layout, or "-" when unset
func FormatDue(due *time.Time, layout string) string {
	if due == nil {
		return "-"
	}
	return due.Format(layout)
}

// TaskRow returns the table cells for one task
func TaskRow(task *models.Task, dateLayout string) []string {
	return []string{
		strconv.Itoa(task.ID),
		task.Title,
		truncate(deref(task.Description), descriptionMax),
		FormatDue(task.DueDate, dateLayout),
		string(task.Priority),
		task.Status,
		deref(task.Tag),
	}
}

// TaskTable renders tasks as a bordered table
func TaskTable(tasks []*models.Task, dateLayout string) string {
	if len(tasks) == 0 {
		return SubtitleStyle.Render("No tasks found")
	}

	rows := make([][]string, len(tasks))
	for i, task := range tasks {
		rows[i] = TaskRow(task, dateLayout)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtle))).
		Headers(TableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			task := tasks[row]
			switch col {
			case priorityColumn:
				return PriorityStyle(task.Priority).Padding(0, 1)
			case statusColumn:
				if task.IsDone() {
					return cellStyle.Foreground(lipgloss.Color(colorDone))
				}
			}
			return cellStyle
		})

	return t.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// truncate shortens s to limit runes on its first line
func truncate(s string, limit int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + "…"
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
