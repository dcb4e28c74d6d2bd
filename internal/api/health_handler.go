package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns service status including database connectivity
func (h *HealthHandler) Health(c *gin.Context) {
	overall := "ok"
	dbStatus := "ok"
	status := http.StatusOK

	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.HealthCheck(); err != nil {
		overall = "degraded"
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"database":  dbStatus,
		"timestamp": time.Now(),
	})
}
