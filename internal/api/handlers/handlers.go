package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/realty-portal/applications-service/internal/models"
	"github.com/realty-portal/applications-service/internal/repository"
	"github.com/realty-portal/applications-service/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Application *ApplicationHandler
	Health      *HealthHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services, db Pinger) *Handlers {
	return &Handlers{
		Application: NewApplicationHandler(services.Application),
		Health:      NewHealthHandler(db),
	}
}

// ============================================
// Response helpers
// ============================================

// respondJSON writes body with the headers every JSON response carries.
func respondJSON(c *gin.Context, code int, body any) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.JSON(code, body)
}

func respondError(c *gin.Context, code int, message string) {
	respondJSON(c, code, models.ErrorResponse{Error: message})
}

// ============================================
// Response Mappers
// ============================================

func toApplicationResponse(a *repository.Application) models.ApplicationResponse {
	return models.ApplicationResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		OperationType:  a.OperationType,
		PropertyType:   a.PropertyType,
		Area:           a.Area,
		Location:       a.Location,
		Description:    a.Description,
		EstimatedValue: a.EstimatedValue,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}
