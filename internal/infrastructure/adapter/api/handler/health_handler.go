package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger verifies connectivity to a dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// DBHealth handles GET /health/db
func (h *HealthHandler) DBHealth(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"db_ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db_ok": true})
}
