// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	domainerrors "plateful/internal/domain/errors"
)

// pathID parses a numeric path parameter. Non-numeric values surface as a
// validation failure rather than a routing error.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("path parameter " + name + " must be an integer")
	}

	return id, nil
}
