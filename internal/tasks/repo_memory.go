package tasks

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of TasksRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	data  map[string]Task
	order []string // insertion order, oldest first
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Task),
	}
}

// Create stores a new task.
func (r *MemoryRepo) Create(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[task.ID]; !ok {
		r.order = append(r.order, task.ID)
	}
	r.data[task.ID] = task
	return nil
}

// GetByID returns a task by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Task, error) {
	if err := ctx.Err(); err != nil {
		return Task{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.data[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return task, nil
}

// List returns tasks in creation order, honoring filter and paging.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Task{}
	skipped := 0
	for _, id := range r.order {
		task, ok := r.data[id]
		if !ok {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, task)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Update replaces an existing task.
func (r *MemoryRepo) Update(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[task.ID]; !ok {
		return ErrNotFound
	}
	r.data[task.ID] = task
	return nil
}

// Delete removes a task by ID.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	for i := range r.order {
		if r.order[i] == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
