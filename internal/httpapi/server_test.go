package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoagency/productivity/internal/model"
	"github.com/jacoagency/productivity/internal/repository"
	"github.com/jacoagency/productivity/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	events := repository.NewEventRepository(db)
	categories := repository.NewCategoryRepository(db)
	importance := repository.NewImportanceRepository(db)
	defaults := repository.NewDefaultTaskRepository(db)

	registry := service.NewRegistryService(categories, importance, tasks, events)
	syncSvc := service.NewSyncService(tasks, events, registry)
	stats := service.NewStatsService(tasks)
	defaultsSvc := service.NewDefaultsService(defaults, tasks)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	for _, user := range []model.User{
		{ID: "alice", Token: "alice-token", Name: "Alice"},
		{ID: "bob", Token: "bob-token", Name: "Bob"},
	} {
		u := user
		require.NoError(t, users.Create(context.Background(), &u))
	}

	ts := httptest.NewServer(NewServer(logger, users, syncSvc, registry, stats, defaultsSvc).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/v1/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/v1/tasks", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTaskLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/tasks", "alice-token", map[string]any{
		"title":   "Write report",
		"dueDate": "2026-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[model.Task](t, resp)
	assert.True(t, strings.HasPrefix(task.ID, "t_"))
	require.NotNil(t, task.EventID)

	// The mirrored event is visible on the calendar.
	resp = doJSON(t, ts, http.MethodGet, "/v1/events", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	events := decode[[]model.Event](t, resp)
	require.Len(t, events, 1)
	assert.Equal(t, "Write report", events[0].Title)

	resp = doJSON(t, ts, http.MethodPatch, "/v1/tasks/"+task.ID, "alice-token", map[string]any{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	task = decode[model.Task](t, resp)
	assert.True(t, task.Completed)
	assert.NotNil(t, task.CompletedAt)

	resp = doJSON(t, ts, http.MethodDelete, "/v1/tasks/"+task.ID, "alice-token", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/v1/events", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	events = decode[[]model.Event](t, resp)
	assert.Empty(t, events)
}

func TestMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/tasks", strings.NewReader("{"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer alice-token")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventConflict(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/events", "alice-token", map[string]any{
		"title": "Standup",
		"start": "2026-03-10T09:00:00Z",
		"end":   "2026-03-10T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodPost, "/v1/events", "alice-token", map[string]any{
		"title": "Planning",
		"start": "2026-03-10T09:30:00Z",
		"end":   "2026-03-10T10:30:00Z",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Bob's calendar is independent.
	resp = doJSON(t, ts, http.MethodPost, "/v1/events", "bob-token", map[string]any{
		"title": "Standup",
		"start": "2026-03-10T09:00:00Z",
		"end":   "2026-03-10T10:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCrossUserIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/tasks", "alice-token", map[string]any{
		"title":   "Private",
		"dueDate": "2026-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[model.Task](t, resp)

	resp = doJSON(t, ts, http.MethodPatch, "/v1/tasks/"+task.ID, "bob-token", map[string]any{
		"completed": true,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodDelete, "/v1/tasks/"+task.ID, "bob-token", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/tasks", "alice-token", map[string]any{
		"title": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodPatch, "/v1/categories/work", "alice-token", map[string]any{
		"label": "Job",
		"color": "#000000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/v1/categories", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	builtins := decode[[]model.Category](t, resp)
	require.NotEmpty(t, builtins)
	assert.Equal(t, "work", builtins[0].ID)

	resp = doJSON(t, ts, http.MethodPost, "/v1/categories", "alice-token", map[string]any{
		"label": "Side project",
		"color": "#FF00FF",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Category](t, resp)
	assert.True(t, strings.HasPrefix(created.ID, "c_"))

	resp = doJSON(t, ts, http.MethodGet, "/v1/categories", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]model.Category](t, resp)
	assert.Len(t, all, len(builtins)+1)

	resp = doJSON(t, ts, http.MethodDelete, "/v1/categories/"+created.ID, "alice-token", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDefaultTaskEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/settings/default-tasks", "alice-token", map[string]any{
		"title":         "Morning review",
		"category":      "work",
		"estimatedTime": 15,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	template := decode[model.DefaultTask](t, resp)

	resp = doJSON(t, ts, http.MethodPost, "/v1/tasks/default-status", "alice-token", map[string]any{
		"defaultTaskId": template.ID,
		"date":          "2026-03-15",
		"completed":     true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decode[model.DefaultTaskStatus](t, resp)
	assert.True(t, status.Completed)

	resp = doJSON(t, ts, http.MethodDelete, "/v1/settings/default-tasks/"+template.ID, "alice-token", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDashboardAndFolders(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/tasks", "alice-token", map[string]any{
		"title":   "Write report",
		"dueDate": "2026-03-10T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/v1/dashboard/stats", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[service.DashboardStats](t, resp)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Len(t, stats.HourlyCompletions, 24)

	resp = doJSON(t, ts, http.MethodGet, "/v1/tasks/folders", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	folders := decode[[]service.Folder](t, resp)
	require.NotEmpty(t, folders)
	assert.Equal(t, "Today", folders[0].Name)
}

func TestArchiveEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/v1/tasks/archive", "alice-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Archived int64 `json:"archived"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Zero(t, out.Archived)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out.Status)
}
