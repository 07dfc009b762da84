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

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// ListRecipes returns every recipe.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	views, err := h.uc.ListRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// SearchRecipes filters recipes by title substring via the q query parameter.
func (h *RecipeHandler) SearchRecipes(c echo.Context) error {
	views, err := h.uc.SearchRecipes(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// ListUserRecipes returns all recipes owned by the user in the path.
func (h *RecipeHandler) ListUserRecipes(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	views, err := h.uc.ListUserRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// CreateRecipe creates a recipe owned by the authenticated identity.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	input := new(usecase.RecipeInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	view, err := h.uc.CreateRecipe(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, view)
}

// UpdateRecipe replaces the mutable fields of an owned recipe.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	input := new(usecase.RecipeInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	view, err := h.uc.UpdateRecipe(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, view)
}

// DeleteRecipe removes an owned recipe and its comments.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListOwnRecipes returns the requester's recipes.
func (h *RecipeHandler) ListOwnRecipes(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	views, err := h.uc.ListOwnRecipes(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// SearchOwnRecipes filters within the requester's recipes only.
func (h *RecipeHandler) SearchOwnRecipes(c echo.Context) error {
	actor, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	views, err := h.uc.SearchOwnRecipes(c.Request().Context(), actor, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, views)
}

// ShareQR renders the recipe share link as a PNG QR code.
func (h *RecipeHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
