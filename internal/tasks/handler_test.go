package tasks_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/bootstrap"
	"todo-backend/internal/shared/config"
)

type taskResponse struct {
	TaskID         string `json:"taskId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	PriorityReason string `json:"priorityReason"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createTask(t *testing.T, router *gin.Engine, payload map[string]any) taskResponse {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/tasks", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var task taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if task.TaskID == "" {
		t.Fatalf("expected taskId, got empty")
	}
	return task
}

func TestHealthReportsStoreAndSuggester(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("expected ok=true, got %v", payload["ok"])
	}
	if payload["store"] != "memory" {
		t.Fatalf("expected memory store in dev, got %v", payload["store"])
	}
	if payload["suggester"] != "heuristic" {
		t.Fatalf("expected heuristic suggester, got %v", payload["suggester"])
	}
}

func TestTasksCreateAndGet(t *testing.T) {
	router := newTestRouter(t)

	created := createTask(t, router, map[string]any{
		"title":       "Buy milk",
		"description": "2 liters",
	})
	if created.Priority != "medium" {
		t.Fatalf("expected default medium priority, got %s", created.Priority)
	}
	if created.Status != "todo" {
		t.Fatalf("expected default todo status, got %s", created.Status)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatalf("expected timestamps, got %+v", created)
	}

	resp := doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+created.TaskID, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var fetched taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Title != "Buy milk" || fetched.Description != "2 liters" {
		t.Fatalf("expected stored task back, got %+v", fetched)
	}
}

func TestTasksCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing_title", payload: map[string]any{"description": "x"}},
		{name: "blank_title", payload: map[string]any{"title": "   "}},
		{name: "title_too_long", payload: map[string]any{"title": strings.Repeat("a", 201)}},
		{name: "description_too_long", payload: map[string]any{"title": "x", "description": strings.Repeat("a", 1001)}},
		{name: "bad_priority", payload: map[string]any{"title": "x", "priority": "urgent"}},
		{name: "bad_status", payload: map[string]any{"title": "x", "status": "archived"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/api/v1/tasks", tc.payload)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var errResp errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Error.Code != "validation_error" {
				t.Fatalf("expected validation_error, got %q", errResp.Error.Code)
			}
		})
	}
}

func TestTasksCreateWithAIPriority(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/tasks?use_ai_priority=true", map[string]any{
		"title":       "Urgent task with deadline",
		"description": "Must be done ASAP",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var task taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if task.Priority != "high" {
		t.Fatalf("expected suggested high priority, got %s", task.Priority)
	}
	if task.PriorityReason == "" {
		t.Fatalf("expected a priority reason, got empty")
	}

	respBad := doJSON(t, router, http.MethodPost, "/api/v1/tasks?use_ai_priority=maybe", map[string]any{
		"title": "x",
	})
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad flag, got %d", respBad.Code)
	}
}

func TestTasksListFilters(t *testing.T) {
	router := newTestRouter(t)

	createTask(t, router, map[string]any{"title": "todo one"})
	createTask(t, router, map[string]any{"title": "todo two"})
	createTask(t, router, map[string]any{"title": "finished", "status": "done", "priority": "high"})

	resp := doJSON(t, router, http.MethodGet, "/api/v1/tasks?status=done", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var done []taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&done); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(done) != 1 || done[0].Title != "finished" {
		t.Fatalf("expected only the done task, got %+v", done)
	}

	respPage := doJSON(t, router, http.MethodGet, "/api/v1/tasks?limit=1&skip=1", nil)
	if respPage.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respPage.Code)
	}
	var page []taskResponse
	if err := json.NewDecoder(respPage.Body).Decode(&page); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(page) != 1 || page[0].Title != "todo two" {
		t.Fatalf("expected second task in creation order, got %+v", page)
	}

	respBad := doJSON(t, router, http.MethodGet, "/api/v1/tasks?status=archived", nil)
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad status filter, got %d", respBad.Code)
	}
}

func TestTasksPatch(t *testing.T) {
	router := newTestRouter(t)

	created := createTask(t, router, map[string]any{"title": "Buy milk", "description": "2 liters"})

	resp := doJSON(t, router, http.MethodPatch, "/api/v1/tasks/"+created.TaskID, map[string]any{
		"status":   "done",
		"priority": "low",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode patch response: %v", err)
	}
	if updated.Status != "done" || updated.Priority != "low" {
		t.Fatalf("expected patched fields applied, got %+v", updated)
	}
	if updated.Title != "Buy milk" || updated.Description != "2 liters" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}

	respMissing := doJSON(t, router, http.MethodPatch, "/api/v1/tasks/absent", map[string]any{"status": "done"})
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respMissing.Code)
	}

	respBad := doJSON(t, router, http.MethodPatch, "/api/v1/tasks/"+created.TaskID, map[string]any{"status": "archived"})
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respBad.Code)
	}
}

func TestTasksDelete(t *testing.T) {
	router := newTestRouter(t)

	created := createTask(t, router, map[string]any{"title": "Buy milk"})

	resp := doJSON(t, router, http.MethodDelete, "/api/v1/tasks/"+created.TaskID, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+created.TaskID, nil)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGet.Code)
	}

	respAgain := doJSON(t, router, http.MethodDelete, "/api/v1/tasks/"+created.TaskID, nil)
	if respAgain.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on repeat delete, got %d", respAgain.Code)
	}
}

func TestTasksAnalyzePriority(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/tasks/priority/analyze", map[string]any{
		"title":       "Urgent task with deadline",
		"description": "Must be done ASAP",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var analyzed struct {
		Priority       string `json:"priority"`
		PriorityReason string `json:"priorityReason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if analyzed.Priority != "high" {
		t.Fatalf("expected high priority, got %s", analyzed.Priority)
	}
	if !strings.Contains(analyzed.PriorityReason, "urgent") {
		t.Fatalf("expected reason to name a keyword, got %q", analyzed.PriorityReason)
	}

	respBad := doJSON(t, router, http.MethodPost, "/api/v1/tasks/priority/analyze", map[string]any{
		"description": "no title",
	})
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respBad.Code)
	}
}

func TestTasksReanalyzePriority(t *testing.T) {
	router := newTestRouter(t)

	created := createTask(t, router, map[string]any{
		"title":       "Urgent fix for the deadline",
		"description": "prod is down, asap",
	})
	if created.Priority != "medium" {
		t.Fatalf("expected default priority before reanalysis, got %s", created.Priority)
	}

	resp := doJSON(t, router, http.MethodPost, "/api/v1/tasks/"+created.TaskID+"/reanalyze-priority", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var reanalyzed taskResponse
	if err := json.NewDecoder(resp.Body).Decode(&reanalyzed); err != nil {
		t.Fatalf("decode reanalyze response: %v", err)
	}
	if reanalyzed.Priority != "high" {
		t.Fatalf("expected high priority after reanalysis, got %s", reanalyzed.Priority)
	}
	if reanalyzed.PriorityReason == "" {
		t.Fatalf("expected a priority reason, got empty")
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/v1/tasks/"+created.TaskID, nil)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var fetched taskResponse
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Priority != "high" {
		t.Fatalf("expected reanalysis persisted, got %s", fetched.Priority)
	}

	respMissing := doJSON(t, router, http.MethodPost, "/api/v1/tasks/absent/reanalyze-priority", nil)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respMissing.Code)
	}
}
