// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse represents the health check response. Every endpoint in this
// service reads or writes the database, so a lost connection reports the whole
// service as degraded.
type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. It answers 503 when the database is
// unreachable so load balancers stop routing to the instance.
func (h *HealthController) Check(c *gin.Context) {
	status, dbStatus := "ok", "connected"
	code := http.StatusOK
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status, dbStatus = "degraded", "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Service:   "budget-tracker",
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
