// Package response holds the JSON shapes shared by every HTTP handler.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the wire shape of every error reply.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes a flat error body with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// NoContent writes an empty 204 reply, used by delete endpoints.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
