package models

import (
	"encoding/json"
	"testing"
	"time"
)

// ============================================================================
// Priority Tests
// ============================================================================

func TestPriority_Valid(t *testing.T) {
	tests := []struct {
		priority Priority
		want     bool
	}{
		{PriorityLow, true},
		{PriorityMedium, true},
		{PriorityHigh, true},
		{"", false},
		{"urgent", false},
		{"HIGH", false},
	}

	for _, tt := range tests {
		if got := tt.priority.Valid(); got != tt.want {
			t.Errorf("Priority(%q).Valid() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestPriority_Rank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Error("Expected high < medium < low by rank")
	}
	if Priority("whatever").Rank() <= PriorityLow.Rank() {
		t.Error("Unknown priorities should rank after low")
	}
}

func TestPriorityNames(t *testing.T) {
	if got := PriorityNames(); got != "low, medium, high" {
		t.Errorf("PriorityNames() = %q", got)
	}
}

// ============================================================================
// Date Tests
// ============================================================================

func TestDateOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2026, 3, 14, 23, 59, 0, 0, loc)

	got := DateOf(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestIsBefore_SameDayIsNotBefore(t *testing.T) {
	morning := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)

	if IsBefore(morning, evening) {
		t.Error("Same calendar day should not count as before")
	}
	if !IsBefore(morning.AddDate(0, 0, -1), evening) {
		t.Error("Previous day should count as before")
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("14.03.2026"); err == nil {
		t.Error("Expected error for non-ISO date")
	}
}

// ============================================================================
// Task JSON Tests
// ============================================================================

func TestTask_MarshalJSON_DueDate(t *testing.T) {
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	task := Task{ID: 7, Title: "Pay rent", DueDate: &due, Priority: PriorityHigh, Status: StatusPending}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if raw["due_date"] != "2026-12-01" {
		t.Errorf("due_date = %v, want 2026-12-01", raw["due_date"])
	}
	if raw["description"] != nil {
		t.Errorf("description = %v, want null", raw["description"])
	}
}

func TestTask_MarshalJSON_NullDueDate(t *testing.T) {
	data, err := json.Marshal(Task{ID: 1, Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.DueDate != nil {
		t.Errorf("Expected nil due date, got %v", back.DueDate)
	}
	if back.Title != "Buy milk" {
		t.Errorf("Title = %q", back.Title)
	}
}

func TestTask_IsDone(t *testing.T) {
	task := &Task{Status: StatusDone}
	if !task.IsDone() {
		t.Error("Expected done task")
	}
	task.Status = "pending"
	if task.IsDone() {
		t.Error("Expected pending task")
	}
}
