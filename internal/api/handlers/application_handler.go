package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/realty-portal/applications-service/internal/models"
	"github.com/realty-portal/applications-service/internal/service"
	"github.com/realty-portal/applications-service/internal/types"
)

// Client-facing messages; the portal front end shows them as-is.
const (
	msgEmailRequired    = "Email обязателен"
	msgFieldsRequired   = "ID заявки и статус обязательны"
	msgInvalidJSON      = "Некорректный JSON"
	msgNotFound         = "Заявка не найдена"
	msgStatusUpdated    = "Статус обновлен"
	msgInternalError    = "Внутренняя ошибка сервера"
	msgMethodNotAllowed = "Method not allowed"
)

var (
	msgInvalidStatus = "Недопустимый статус. Разрешены: " + types.AllowedStatusList()

	allowedMethods = []string{http.MethodGet, http.MethodPut, http.MethodOptions}
)

const preflightMaxAge = 24 * time.Hour

// ============================================
// Application Handler
// ============================================

// ApplicationHandler serves /applications. There is no authentication in
// front of it: any caller may read by email or change any status.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Preflight answers OPTIONS without touching storage.
func (h *ApplicationHandler) Preflight(c *gin.Context) {
	header := c.Writer.Header()
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", strings.Join(allowedMethods, ", "))
	header.Set("Access-Control-Allow-Headers", "Content-Type")
	header.Set("Access-Control-Max-Age", strconv.Itoa(int(preflightMaxAge.Seconds())))
	c.Status(http.StatusOK)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	email := c.Query("email")

	apps, err := h.applicationService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, msgEmailRequired)
			return
		}
		h.internalError(c, "list applications", err)
		return
	}

	response := models.ApplicationListResponse{
		Applications: make([]models.ApplicationResponse, len(apps)),
	}
	for i, a := range apps {
		response.Applications[i] = toApplicationResponse(a)
	}

	respondJSON(c, http.StatusOK, response)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	var (
		id     int64
		status string
	)
	if req.ApplicationID != nil {
		id = *req.ApplicationID
	}
	if req.Status != nil {
		status = *req.Status
	}

	updatedID, err := h.applicationService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, msgInvalidStatus)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, msgNotFound)
		default:
			h.internalError(c, "update application status", err)
		}
		return
	}

	slog.InfoContext(c.Request.Context(), "application status updated",
		"application_id", updatedID, "status", status)

	respondJSON(c, http.StatusOK, models.UpdateStatusResponse{
		Success:       true,
		Message:       msgStatusUpdated,
		ApplicationID: updatedID,
	})
}

// MethodNotAllowed is installed as the router's NoMethod handler.
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// internalError logs the storage failure and sends a generic message.
func (h *ApplicationHandler) internalError(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), op+" failed", "error", err)
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, msgInternalError)
}
