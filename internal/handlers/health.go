package handlers

import (
	"context"
	"net/http"
	"time"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "client-portal"

	DatabaseDisabled    = "disabled"
	DatabaseConnected   = "connected"
	DatabaseUnavailable = "unavailable"
)

// Pinger is the orphan ledger connection. Implemented by
// supabase.DatabaseClient.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

// NewHealthHandler accepts a nil db when no direct database is configured.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary     Health check
// @Description Reports that the portal API is up and whether the orphan ledger database answers. A lost database degrades the status but never fails the check.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := models.HealthResponse{
		Status:   "ok",
		Service:  ServiceName,
		Database: DatabaseDisabled,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			response.Status = "degraded"
			response.Database = DatabaseUnavailable
		} else {
			response.Database = DatabaseConnected
		}
	}

	c.JSON(http.StatusOK, response)
}
