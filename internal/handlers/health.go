package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hometownheating/internal/services"
)

// HealthHandler serves the health check endpoint
type HealthHandler struct {
	service *services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *services.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/health", h.Check)
}

// Check reports service health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Check())
}
