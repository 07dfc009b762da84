package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/response"
	domainerrors "plateful/internal/domain/errors"
)

// TestHandler serves the protected probe endpoint used to exercise the
// authentication middleware. Registered only when testRoutes is enabled.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Protected greets the authenticated identity with its claim fields.
func (h *TestHandler) Protected(c echo.Context) error {
	claims, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"message":  "Hello, " + claims.Username + "! This is a protected route.",
		"user_id":  claims.UserID,
		"username": claims.Username,
		"email":    claims.Email,
	})
}
