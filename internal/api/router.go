package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/realty-portal/applications-service/internal/api/handlers"
	"github.com/realty-portal/applications-service/internal/api/middleware"
)

// NewRouter wires the gin engine. gin's mode must be set before calling.
func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Browser preflights carry Origin and are answered here; origin-less
	// OPTIONS fall through to the explicit Preflight route.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type"},
		MaxAge:                    24 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/health", h.Health.Check)

	// No auth middleware: ownership of an email is not verified.
	r.OPTIONS("/applications", h.Application.Preflight)
	r.GET("/applications", h.Application.List)
	r.PUT("/applications", h.Application.UpdateStatus)

	return r
}
