package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronotask/internal/auth"
	"chronotask/internal/onboarding"
	"chronotask/internal/storage"
	"chronotask/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.New(storage.NewMemoryStore(), auth.NewMock())
	require.NoError(t, err)
	return New(st, auth.NewMock(), nil)
}

func (s *Server) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/api/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantCode int
	}{
		{"valid credentials", map[string]string{"email": "admin", "password": "admin"}, http.StatusOK},
		{"wrong password", map[string]string{"email": "admin", "password": "nope"}, http.StatusUnauthorized},
		{"unknown email", map[string]string{"email": "someone", "password": "admin"}, http.StatusUnauthorized},
		{"missing fields", map[string]string{"email": "admin"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			w := srv.do(t, http.MethodPost, "/api/session", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "identifiants invalides", decode(t, w)["error"])
			}
		})
	}
}

func TestRouteProgression(t *testing.T) {
	srv := newTestServer(t)

	dest := func() string {
		w := srv.do(t, http.MethodGet, "/api/route", nil)
		require.Equal(t, http.StatusOK, w.Code)
		return decode(t, w)["destination"].(string)
	}

	assert.Equal(t, "landing", dest(), "signed out")

	w := srv.do(t, http.MethodPost, "/api/session", map[string]string{"email": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "onboarding", dest(), "signed in, nothing answered")

	for _, q := range onboarding.Questions() {
		w := srv.do(t, http.MethodPost, "/api/responses", map[string]any{
			"question_id": q.ID,
			"answer":      "x",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	assert.Equal(t, "dashboard", dest(), "fully onboarded")

	w = srv.do(t, http.MethodDelete, "/api/session", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "landing", dest(), "after sign-out")
}

func TestOnboardingStepBounds(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPut, "/api/onboarding/step", map[string]int{"step": 2})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, step := range []int{-1, onboarding.QuestionCount()} {
		w := srv.do(t, http.MethodPut, "/api/onboarding/step", map[string]int{"step": step})
		assert.Equalf(t, http.StatusBadRequest, w.Code, "step %d", step)
	}

	w = srv.do(t, http.MethodGet, "/api/onboarding", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["current_step"])
	assert.Equal(t, false, body["complete"])
	assert.Len(t, body["questions"], onboarding.QuestionCount())
}

func TestAddResponseValidation(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/responses", map[string]any{"question_id": "wake-time"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodPost, "/api/responses", map[string]any{
		"question_id": "priorities",
		"answer":      []string{"Carrière", "Finances"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTaskLifecycle(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/tasks", map[string]any{"title": "Acheter du lait", "priority": "high"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "todo", created["status"], "status defaults")

	w = srv.do(t, http.MethodPatch, "/api/tasks/"+id, map[string]string{"status": "done"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = srv.do(t, http.MethodPatch, "/api/tasks/missing", map[string]string{"status": "done"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "done", tasks[0]["status"])

	w = srv.do(t, http.MethodDelete, "/api/tasks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = srv.do(t, http.MethodDelete, "/api/tasks/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskValidation(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/tasks", map[string]string{"priority": "high"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "title required")

	w = srv.do(t, http.MethodPost, "/api/tasks", map[string]string{"title": "x", "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown priority")
}

func TestClearCompleted(t *testing.T) {
	srv := newTestServer(t)

	for i, status := range []string{"done", "todo", "done"} {
		w := srv.do(t, http.MethodPost, "/api/tasks", map[string]string{
			"title":  fmt.Sprintf("t%d", i),
			"status": status,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := srv.do(t, http.MethodPost, "/api/tasks/clear-completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["removed"])

	w = srv.do(t, http.MethodPost, "/api/tasks/clear-completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["removed"])
}

func TestBoard(t *testing.T) {
	srv := newTestServer(t)

	seed := []map[string]string{
		{"title": "Acheter du lait", "status": "todo", "priority": "high"},
		{"title": "Rapport", "status": "in-progress", "priority": "medium"},
		{"title": "Vaisselle", "status": "done", "priority": "low"},
	}
	for _, task := range seed {
		w := srv.do(t, http.MethodPost, "/api/tasks", task)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := srv.do(t, http.MethodGet, "/api/board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(1), stats["completed"])

	lanes := body["lanes"].(map[string]any)
	for _, lane := range []string{"todo", "in_progress", "done"} {
		assert.Lenf(t, lanes[lane], 1, "lane %s", lane)
	}

	quick := body["quick_list"].([]any)
	require.Len(t, quick, 1)
	assert.Equal(t, "Acheter du lait", quick[0].(map[string]any)["title"])
}

func TestRoutineValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{"valid", map[string]any{"time": "07:00", "activity": "Réveil", "duration_min": 30}, http.StatusCreated},
		{"bad clock", map[string]any{"time": "26:00", "activity": "x", "duration_min": 10}, http.StatusBadRequest},
		{"missing activity", map[string]any{"time": "07:00", "duration_min": 10}, http.StatusBadRequest},
		{"zero duration", map[string]any{"time": "07:00", "activity": "x", "duration_min": 0}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/routines", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGoalLifecycle(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/goals", map[string]any{
		"title":    "Courir 10km",
		"deadline": "2026-12-01",
		"progress": 80,
		"milestones": []map[string]any{
			{"title": "5km", "completed": true},
			{"title": "10km"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	goal := decode(t, w)
	assert.Equal(t, float64(50), goal["progress"], "progress derives from milestones, not the payload")

	goalID := goal["id"].(string)
	milestones := goal["milestones"].([]any)
	require.Len(t, milestones, 2)
	second := milestones[1].(map[string]any)["id"].(string)
	require.NotEmpty(t, second)

	w = srv.do(t, http.MethodPost, "/api/goals/"+goalID+"/milestones/"+second+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), decode(t, w)["progress"])

	w = srv.do(t, http.MethodPost, "/api/goals/"+goalID+"/milestones/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodPost, "/api/goals", map[string]string{"title": "sans deadline"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendar(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/routines", map[string]any{
		"time": "07:00", "activity": "Réveil", "duration_min": 30, "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodGet, "/api/calendar?view=day", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	events := body["events"].([]any)
	require.Len(t, events, 1, "routine recurs into today's window")
	assert.Equal(t, "routine", events[0].(map[string]any)["type"])

	w = srv.do(t, http.MethodGet, "/api/calendar?view=year", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodGet, "/api/calendar?view=week&date=12-01-2026", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatFallsBackWithoutAssistant(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "bonjour"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["fallback"])
	assert.Contains(t, body["message"].(string), "difficultés techniques")

	w = srv.do(t, http.MethodPost, "/api/chat", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
