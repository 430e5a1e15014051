package tasks

import (
	"strings"
	"time"

	"todo-backend/internal/priority"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// ParseStatus normalizes raw input into a Status.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusTodo:
		return StatusTodo, true
	case StatusDone:
		return StatusDone, true
	default:
		return "", false
	}
}

func (s Status) String() string { return string(s) }

// Field limits, measured in characters.
const (
	MaxTitleLen          = 200
	MaxDescriptionLen    = 1000
	MaxPriorityReasonLen = 500
)

// Task is a single tracked todo item.
type Task struct {
	ID             string
	Title          string
	Description    string
	Priority       priority.Level
	PriorityReason string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
