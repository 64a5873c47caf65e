package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hometownheating/internal/services"
)

// ContactHandler serves the contact form endpoints
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Register(e *echo.Echo) {
	e.POST("/api/contact", h.Submit)
	e.GET("/api/contact-inquiries", h.List)
}

// Submit handles a contact form submission
func (h *ContactHandler) Submit(c echo.Context) error {
	var req services.ContactSubmission
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "Invalid form data",
		})
	}

	inquiry, err := h.service.Submit(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err, "Failed to submit inquiry")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"id":      inquiry.ID,
	})
}

// List returns stored contact inquiries, newest first (admin use)
func (h *ContactHandler) List(c echo.Context) error {
	inquiries, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Failed to fetch inquiries")
	}
	return c.JSON(http.StatusOK, inquiries)
}
