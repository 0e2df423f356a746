package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tasktrack/internal/models"
)

func TestTaskRow(t *testing.T) {
	due := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)
	desc := "first line\nsecond line"
	tag := "home"

	row := TaskRow(&models.Task{
		ID:          12,
		Title:       "Buy milk",
		Description: &desc,
		DueDate:     &due,
		Priority:    models.PriorityLow,
		Status:      models.StatusPending,
		Tag:         &tag,
	}, "02.01.2006")

	assert.Equal(t, []string{"12", "Buy milk", "first line…", "04.03.2030", "low", "pending", "home"}, row)
}

func TestTaskRow_EmptyOptionals(t *testing.T) {
	row := TaskRow(&models.Task{ID: 1, Title: "bare", Priority: models.PriorityMedium, Status: models.StatusDone}, "2006-01-02")

	assert.Equal(t, "", row[2])
	assert.Equal(t, "-", row[3])
	assert.Equal(t, "", row[6])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
	assert.Equal(t, "héll…", truncate("héllo wörld", 5))
}

func TestTaskTable(t *testing.T) {
	assert.Contains(t, TaskTable(nil, "2006-01-02"), "No tasks found")

	out := TaskTable([]*models.Task{
		{ID: 1, Title: "Buy milk", Priority: models.PriorityLow, Status: models.StatusPending},
		{ID: 2, Title: "File taxes", Priority: models.PriorityHigh, Status: models.StatusDone},
	}, "2006-01-02")

	for _, header := range TableHeaders {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "File taxes")
}
