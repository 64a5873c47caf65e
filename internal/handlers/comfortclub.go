package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"hometownheating/internal/services"
)

// ComfortClubHandler serves the membership application endpoints
type ComfortClubHandler struct {
	service *services.ComfortClubService
}

// NewComfortClubHandler creates a new Comfort Club handler
func NewComfortClubHandler(service *services.ComfortClubService) *ComfortClubHandler {
	return &ComfortClubHandler{service: service}
}

func (h *ComfortClubHandler) Register(e *echo.Echo) {
	e.POST("/api/comfort-club", h.Submit)
	e.GET("/api/comfort-club-applications", h.List)
	e.PATCH("/api/comfort-club/:id/status", h.UpdateStatus)
}

// Submit handles a Comfort Club application submission
func (h *ComfortClubHandler) Submit(c echo.Context) error {
	var req services.ClubApplicationSubmission
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "Invalid application data",
		})
	}

	app, err := h.service.Submit(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err, "Failed to submit application")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"id":      app.ID,
	})
}

// List returns stored applications, newest first (admin use)
func (h *ComfortClubHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Failed to fetch applications")
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus replaces an application's status field
func (h *ComfortClubHandler) UpdateStatus(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "Status is required and must be a string",
		})
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err, "Failed to update application status")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"application": app,
	})
}
