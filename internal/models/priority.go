package models

import "strings"

// Priority is the urgency of a task
type Priority string

// Priority levels, most urgent first
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is applied when a task is created without one
const DefaultPriority = PriorityMedium

// ValidPriorities lists the accepted priorities in display order
var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high=1, medium=2, low=3, anything else 4
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func (p Priority) String() string {
	return string(p)
}

// PriorityNames returns the valid priorities joined for messages, e.g. "low, medium, high"
func PriorityNames() string {
	names := make([]string, len(ValidPriorities))
	for i, p := range ValidPriorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
