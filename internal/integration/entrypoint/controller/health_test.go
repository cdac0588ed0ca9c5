// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, checker func() bool) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", NewHealthController(checker).Check)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(recorder, request)

	var body HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return recorder, body
}

func TestHealthCheck(t *testing.T) {
	t.Run("reports ok when the database responds", func(t *testing.T) {
		recorder, body := performHealthCheck(t, func() bool { return true })

		if recorder.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", recorder.Code)
		}
		if body.Status != "ok" || body.Database != "connected" {
			t.Errorf("expected ok/connected, got %s/%s", body.Status, body.Database)
		}
		if body.Service != "budget-tracker" {
			t.Errorf("unexpected service name %q", body.Service)
		}
	})

	t.Run("reports degraded with 503 when the database is unreachable", func(t *testing.T) {
		recorder, body := performHealthCheck(t, func() bool { return false })

		if recorder.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", recorder.Code)
		}
		if body.Status != "degraded" || body.Database != "disconnected" {
			t.Errorf("expected degraded/disconnected, got %s/%s", body.Status, body.Database)
		}
	})

	t.Run("missing checker counts as unreachable", func(t *testing.T) {
		recorder, _ := performHealthCheck(t, nil)

		if recorder.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", recorder.Code)
		}
	})
}
