package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/response"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/usecase"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// ListComments returns every comment.
func (h *CommentHandler) ListComments(c echo.Context) error {
	views, err := h.uc.ListComments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// GetComment returns a single comment by id.
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.uc.GetComment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// ListRecipeComments returns all comments on the recipe in the path.
func (h *CommentHandler) ListRecipeComments(c echo.Context) error {
	recipeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	views, err := h.uc.ListRecipeComments(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// ListUserComments returns all comments written by the user in the path.
func (h *CommentHandler) ListUserComments(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	views, err := h.uc.ListUserComments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// CreateComment creates a comment authored by the authenticated identity.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	input := new(usecase.CreateCommentInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	view, err := h.uc.CreateComment(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, view)
}

// UpdateComment replaces the mutable fields of an owned comment.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.UpdateCommentInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	view, err := h.uc.UpdateComment(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// DeleteComment removes an owned comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
