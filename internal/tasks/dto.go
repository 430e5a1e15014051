package tasks

import "time"

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTaskRequest carries a partial update; absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Priority       *string `json:"priority"`
	PriorityReason *string `json:"priorityReason"`
	Status         *string `json:"status"`
}

// AnalyzePriorityRequest is the payload for a standalone priority analysis.
type AnalyzePriorityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalyzePriorityResponse carries the suggested priority and its reason.
type AnalyzePriorityResponse struct {
	Priority       string `json:"priority"`
	PriorityReason string `json:"priorityReason"`
}

// TaskResponse is the outward-facing representation of a task.
type TaskResponse struct {
	TaskID         string    `json:"taskId"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Priority       string    `json:"priority"`
	PriorityReason string    `json:"priorityReason,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toResponse(t Task) TaskResponse {
	return TaskResponse{
		TaskID:         t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority.String(),
		PriorityReason: t.PriorityReason,
		Status:         t.Status.String(),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
