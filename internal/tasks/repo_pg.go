package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements TasksRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new task.
func (r *PGRepo) Create(ctx context.Context, task Task) error {
	const query = `
INSERT INTO tasks (
    id,
    title,
    description,
    priority,
    priority_reason,
    status,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var description sql.NullString
	if task.Description != "" {
		description = sql.NullString{String: task.Description, Valid: true}
	}
	var reason sql.NullString
	if task.PriorityReason != "" {
		reason = sql.NullString{String: task.PriorityReason, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		description,
		task.Priority,
		reason,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	return err
}

// GetByID fetches a task by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Task, error) {
	const query = `
SELECT id, title, description, priority, priority_reason, status, created_at, updated_at
FROM tasks
WHERE id = $1
LIMIT 1`
	var task Task
	var description sql.NullString
	var reason sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Priority,
		&reason,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	if description.Valid {
		task.Description = description.String
	}
	if reason.Valid {
		task.PriorityReason = reason.String
	}
	return task, nil
}

// List returns tasks in creation order, honoring filter and paging.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Task, error) {
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

	query := `
SELECT id, title, description, priority, priority_reason, status, created_at, updated_at
FROM tasks`
	var args []any
	var where []string
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf("\nORDER BY created_at ASC\nLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var task Task
		var description sql.NullString
		var reason sql.NullString
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&description,
			&task.Priority,
			&reason,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if description.Valid {
			task.Description = description.String
		}
		if reason.Valid {
			task.PriorityReason = reason.String
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// Update replaces an existing task's stored fields.
func (r *PGRepo) Update(ctx context.Context, task Task) error {
	const query = `
UPDATE tasks
SET title = $1, description = $2, priority = $3, priority_reason = $4, status = $5, updated_at = $6
WHERE id = $7`

	var description sql.NullString
	if task.Description != "" {
		description = sql.NullString{String: task.Description, Valid: true}
	}
	var reason sql.NullString
	if task.PriorityReason != "" {
		reason = sql.NullString{String: task.PriorityReason, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query, task.Title, description, task.Priority, reason, task.Status, task.UpdatedAt, task.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `
DELETE FROM tasks
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ TasksRepo = (*PGRepo)(nil)
