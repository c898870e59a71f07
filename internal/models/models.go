package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// area and estimated_value go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ============================================
// Application DTOs
// ============================================

type ApplicationResponse struct {
	ID             int64               `json:"id"`
	Name           *string             `json:"name"`
	Email          *string             `json:"email"`
	Phone          *string             `json:"phone"`
	OperationType  *string             `json:"operation_type"`
	PropertyType   *string             `json:"property_type"`
	Area           decimal.NullDecimal `json:"area"`
	Location       *string             `json:"location"`
	Description    *string             `json:"description"`
	EstimatedValue decimal.NullDecimal `json:"estimated_value"`
	Status         *string             `json:"status"`
	CreatedAt      *time.Time          `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// UpdateStatusRequest uses pointers so absent fields can be told apart.
type UpdateStatusRequest struct {
	ApplicationID *int64  `json:"application_id"`
	Status        *string `json:"status"`
}

type UpdateStatusResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
