package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-backend/internal/priority"
)

// Service contains business logic for tasks.
type Service struct {
	Repo     TasksRepo
	Priority *priority.Service
}

// NewTask carries the fields for creating a task.
type NewTask struct {
	Title       string
	Description string
	Priority    priority.Level
	Status      Status
}

// UpdateTask carries a partial update; nil fields are left as stored.
type UpdateTask struct {
	Title          *string
	Description    *string
	Priority       *priority.Level
	PriorityReason *string
	Status         *Status
}

// Create stores a new task, optionally letting the suggestion engine choose
// the priority from the task text.
func (s *Service) Create(ctx context.Context, input NewTask, useAIPriority bool) (Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Task{}, ErrInvalidInput
	}

	level := input.Priority
	if level == "" {
		level = priority.Medium
	}
	status := input.Status
	if status == "" {
		status = StatusTodo
	}

	reason := ""
	if useAIPriority {
		suggestion := s.Priority.Suggest(ctx, input.Title, input.Description)
		level = suggestion.Priority
		reason = suggestion.Reason
	}

	now := time.Now().UTC()
	task := Task{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Description:    input.Description,
		Priority:       level,
		PriorityReason: reason,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, task); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Get returns a task by ID.
func (s *Service) Get(ctx context.Context, id string) (Task, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns tasks matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	return s.Repo.List(ctx, filter)
}

// Update applies the set fields of the partial update and bumps UpdatedAt.
func (s *Service) Update(ctx context.Context, id string, input UpdateTask) (Task, error) {
	task, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return Task{}, ErrInvalidInput
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.PriorityReason != nil {
		task.PriorityReason = *input.PriorityReason
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Delete removes a task by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// AnalyzePriority classifies free task text without touching any stored task.
func (s *Service) AnalyzePriority(ctx context.Context, title, description string) priority.Suggestion {
	return s.Priority.Suggest(ctx, title, description)
}

// ReanalyzePriority refreshes the stored suggestion for an existing task and
// persists the new priority and reason.
func (s *Service) ReanalyzePriority(ctx context.Context, id string) (Task, error) {
	task, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	suggestion := s.Priority.Reanalyze(ctx, task.Title, task.Description)
	task.Priority = suggestion.Priority
	task.PriorityReason = suggestion.Reason
	task.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}

	return task, nil
}
