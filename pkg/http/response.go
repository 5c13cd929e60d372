package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a 200 response with the given payload.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 response listing the failed fields.
func BadRequestResponse(c echo.Context, details []ValidationError) error {
	msg := "validation failed"
	if len(details) > 0 && details[0].Message != "" {
		msg = details[0].Message
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

// AppErrorResponse writes an application error with its own status and code.
// Anything that is not an AppError becomes a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorResponse{
			Error: appErr.Message,
			Details: []ValidationError{{
				Code:    appErr.Code,
				Field:   appErr.Field,
				Message: appErr.Message,
			}},
		})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
