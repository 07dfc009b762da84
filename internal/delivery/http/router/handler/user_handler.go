package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"plateful/internal/delivery/http/response"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, db *gorm.DB, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		db:     db,
		logger: logger,
	}
}

// Root is the landing endpoint.
func (h *UserHandler) Root(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"message": "Welcome!",
		"status":  "running",
	})
}

// HealthCheck reports liveness, pinging the database.
func (h *UserHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))

		return response.JSON(c, http.StatusServiceUnavailable, map[string]string{
			"status":   "ERROR",
			"database": "disconnected",
		})
	}

	return response.JSON(c, http.StatusOK, map[string]string{
		"status":   "OK",
		"database": "connected",
	})
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	input := new(usecase.RegisterUserInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output.User)
}

// Login handles the user login request. Missing fields are reported before
// any credential check; bad credentials collapse to a single 401 message.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrMissingCredentials
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// ListUsers returns every registered user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	views, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}
