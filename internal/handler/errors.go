package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"wedding-registry-backend/internal/dto"
	"wedding-registry-backend/internal/service"
)

// writeError translates service errors to the JSON error body the frontend
// expects. Anything unrecognized is a 500.
func writeError(c echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrPresentNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrOutOfStock),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidContent):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	return c.JSON(status, dto.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
