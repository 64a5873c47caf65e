// Package handlers wires the submission pipeline to the public JSON API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "hometownheating/pkg/errors"
)

// Handler registers routes on the Echo instance.
type Handler interface {
	Register(e *echo.Echo)
}

// errorResponse is the failure body shared by all endpoints
type errorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// writeError maps a service error to the HTTP response. Validation errors
// carry their field details; anything unexpected becomes a generic 500 so
// internals never leak to the client.
func writeError(c echo.Context, err error, genericMessage string) error {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Code {
		case apperrors.ErrCodeValidation, apperrors.ErrCodeBadRequest:
			return c.JSON(http.StatusBadRequest, errorResponse{
				Success: false,
				Error:   appErr.Message,
				Details: appErr.Fields,
			})
		case apperrors.ErrCodeNotFound:
			return c.JSON(http.StatusNotFound, errorResponse{
				Success: false,
				Error:   appErr.Message,
			})
		}
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{
		Success: false,
		Error:   genericMessage,
	})
}
