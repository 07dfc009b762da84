package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"plateful/internal/delivery/http/response"
	"plateful/internal/usecase"
)

// ActivityHandler exposes the worker-produced activity feed.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// ListUserActivity returns the recent activity entries of the user in the path.
func (h *ActivityHandler) ListUserActivity(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	views, err := h.uc.ListUserActivity(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}
