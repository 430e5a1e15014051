package tasks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/priority"
	"todo-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches task routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tasks", h.create)
	rg.GET("/tasks", h.list)
	rg.POST("/tasks/priority/analyze", h.analyzePriority)
	rg.GET("/tasks/:id", h.get)
	rg.PATCH("/tasks/:id", h.update)
	rg.DELETE("/tasks/:id", h.delete)
	rg.POST("/tasks/:id/reanalyze-priority", h.reanalyzePriority)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	if req.Title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title must be at most 200 characters", nil)
		return
	}
	if utf8.RuneCountInString(req.Description) > MaxDescriptionLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description must be at most 1000 characters", nil)
		return
	}

	level := priority.Medium
	if req.Priority != "" {
		parsed, ok := priority.ParseLevel(req.Priority)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "priority must be one of low, medium, high", nil)
			return
		}
		level = parsed
	}

	status := StatusTodo
	if req.Status != "" {
		parsed, ok := ParseStatus(req.Status)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "status must be one of todo, done", nil)
			return
		}
		status = parsed
	}

	useAI := false
	if v := c.Query("use_ai_priority"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "use_ai_priority must be a boolean", nil)
			return
		}
		useAI = parsed
	}

	task, err := h.Svc.Create(c.Request.Context(), NewTask{
		Title:       req.Title,
		Description: req.Description,
		Priority:    level,
		Status:      status,
	}, useAI)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create task", nil)
		}
		return
	}

	c.Set("taskId", task.ID)
	respond.JSON(c, http.StatusCreated, toResponse(task))
}

func (h *Handler) list(c *gin.Context) {
	var filter ListFilter

	if v := c.Query("status"); v != "" {
		parsed, ok := ParseStatus(v)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "status must be one of todo, done", nil)
			return
		}
		filter.Status = parsed
	}
	if v := c.Query("priority"); v != "" {
		parsed, ok := priority.ParseLevel(v)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "priority must be one of low, medium, high", nil)
			return
		}
		filter.Priority = parsed
	}
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Limit = parsed
		}
	}
	if v := c.Query("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Offset = parsed
		}
	}

	tasks, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tasks", nil)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, toResponse(task))
	}

	respond.OK(c, resp)
}

func (h *Handler) analyzePriority(c *gin.Context) {
	var req AnalyzePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	if req.Title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title must be at most 200 characters", nil)
		return
	}
	if utf8.RuneCountInString(req.Description) > MaxDescriptionLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description must be at most 1000 characters", nil)
		return
	}

	suggestion := h.Svc.AnalyzePriority(c.Request.Context(), req.Title, req.Description)

	respond.OK(c, AnalyzePriorityResponse{
		Priority:       suggestion.Priority.String(),
		PriorityReason: suggestion.Reason,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("taskId", id)

	task, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch task", nil)
		}
		return
	}

	respond.OK(c, toResponse(task))
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("taskId", id)

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var input UpdateTask

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "title must not be empty", nil)
			return
		}
		if utf8.RuneCountInString(title) > MaxTitleLen {
			respond.Error(c, http.StatusBadRequest, "validation_error", "title must be at most 200 characters", nil)
			return
		}
		input.Title = &title
	}
	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > MaxDescriptionLen {
			respond.Error(c, http.StatusBadRequest, "validation_error", "description must be at most 1000 characters", nil)
			return
		}
		input.Description = req.Description
	}
	if req.Priority != nil {
		parsed, ok := priority.ParseLevel(*req.Priority)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "priority must be one of low, medium, high", nil)
			return
		}
		input.Priority = &parsed
	}
	if req.PriorityReason != nil {
		if utf8.RuneCountInString(*req.PriorityReason) > MaxPriorityReasonLen {
			respond.Error(c, http.StatusBadRequest, "validation_error", "priorityReason must be at most 500 characters", nil)
			return
		}
		input.PriorityReason = req.PriorityReason
	}
	if req.Status != nil {
		parsed, ok := ParseStatus(*req.Status)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "status must be one of todo, done", nil)
			return
		}
		input.Status = &parsed
	}

	task, err := h.Svc.Update(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update task", nil)
		}
		return
	}

	respond.OK(c, toResponse(task))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("taskId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete task", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) reanalyzePriority(c *gin.Context) {
	id := c.Param("id")
	c.Set("taskId", id)

	task, err := h.Svc.ReanalyzePriority(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reanalyze task priority", nil)
		}
		return
	}

	respond.OK(c, toResponse(task))
}
