package tasks

import (
	"context"

	"todo-backend/internal/priority"
)

// List paging bounds.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// ListFilter narrows and pages a task listing. Zero values mean "no filter".
type ListFilter struct {
	Status   Status
	Priority priority.Level
	Limit    int
	Offset   int
}

// TasksRepo defines persistence operations for tasks.
type TasksRepo interface {
	Create(ctx context.Context, task Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id string) error
}
