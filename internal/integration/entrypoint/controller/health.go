package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	cacheHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil cacheHealthChecker reports the report cache as disabled.
func NewHealthController(dbHealthChecker, cacheHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// The ledger store is required; a failing report cache only degrades the status.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Cache:     "disabled",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		response.Database = "connected"
	}

	if h.cacheHealthChecker != nil {
		response.Cache = "disconnected"
		if h.cacheHealthChecker() {
			response.Cache = "connected"
		}
	}

	switch {
	case response.Database != "connected":
		response.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	case response.Cache == "disconnected":
		response.Status = "degraded"
	}

	c.JSON(http.StatusOK, response)
}
