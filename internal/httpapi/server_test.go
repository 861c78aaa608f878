package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRootEndpointListsTools(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	tools, ok := body["tools"].([]any)
	if !ok || len(tools) != 9 {
		t.Fatalf("expected 9 tools, got %v", body["tools"])
	}
}

func TestOptimizeScheduleEndpointRejectsMalformedBody(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest(http.MethodPost, "/optimize_schedule", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestOptimizeScheduleEndpointSolves(t *testing.T) {
	s := NewServer()
	body := []byte(`{
		"jobs": [{"job_id": "J1", "tasks": [{"task_id": "a", "duration": 3, "eligible_machines": ["M1"]}]}],
		"machines": [{"machine_id": "M1"}],
		"objective": "minimize_makespan",
		"max_solve_time_seconds": 2
	}`)
	req := httptest.NewRequest(http.MethodPost, "/optimize_schedule", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
