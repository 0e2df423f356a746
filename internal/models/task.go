package models

import (
	"encoding/json"
	"time"
)

// Status values the application writes. Status is free-form text, so rows
// may carry any other value as well.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Task represents a single to-do item
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"-"`
	Priority    Priority   `json:"priority"`
	Status      string     `json:"status"`
	Tag         *string    `json:"tag"`
}

// taskJSON mirrors Task with the due date rendered as a calendar date
type taskJSON struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Priority    Priority `json:"priority"`
	Status      string   `json:"status"`
	Tag         *string  `json:"tag"`
}

// MarshalJSON writes due_date as YYYY-MM-DD or null
func (t Task) MarshalJSON() ([]byte, error) {
	out := taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Tag:         t.Tag,
	}
	if t.DueDate != nil {
		s := FormatDate(*t.DueDate)
		out.DueDate = &s
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the format produced by MarshalJSON
func (t *Task) UnmarshalJSON(data []byte) error {
	var in taskJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		Tag:         in.Tag,
	}
	if in.DueDate != nil {
		d, err := ParseDate(*in.DueDate)
		if err != nil {
			return err
		}
		t.DueDate = &d
	}
	return nil
}

// GetID lets the CLI formatter print just the ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// IsDone reports whether the task carries the done status
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
