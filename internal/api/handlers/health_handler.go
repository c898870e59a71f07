package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/realty-portal/applications-service/internal/models"
)

// Pinger is satisfied by *db.PostgresDB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check: database unreachable", "error", err)
		respondJSON(c, http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "unhealthy",
			Database: "unreachable",
		})
		return
	}

	respondJSON(c, http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
