package usecase

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	"plateful/internal/domain/service"
)

// --- Input DTOs ---

// RecipeInput defines the fields a client may set when creating or updating
// a recipe. The owner is never part of the payload, it always comes from the
// authenticated identity.
type RecipeInput struct {
	Title           string `json:"title" validate:"required"`
	DishType        string `json:"dish_type"`
	Ingredients     string `json:"ingredients" validate:"required"`
	Instructions    string `json:"instructions" validate:"required"`
	PreparationTime string `json:"preparation_time"`
	Origin          string `json:"origin"`
	Servings        int    `json:"servings" validate:"omitempty,min=1"`
}

// --- Output DTOs ---

// RecipeView is the public representation of a recipe.
type RecipeView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	DishType        string    `json:"dish_type,omitempty"`
	Ingredients     string    `json:"ingredients"`
	Instructions    string    `json:"instructions"`
	PreparationTime string    `json:"preparation_time,omitempty"`
	Origin          string    `json:"origin,omitempty"`
	Servings        int       `json:"servings,omitempty"`
	UserID          int64     `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewRecipeView maps a domain recipe to its public representation.
func NewRecipeView(recipe *entity.Recipe) *RecipeView {
	if recipe == nil {
		return nil
	}

	return &RecipeView{
		ID:              recipe.ID,
		Title:           recipe.Title,
		DishType:        recipe.DishType,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		PreparationTime: recipe.PreparationTime,
		Origin:          recipe.Origin,
		Servings:        recipe.Servings,
		UserID:          recipe.UserID,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}

// NewRecipeViews maps a slice of domain recipes.
func NewRecipeViews(recipes []*entity.Recipe) []*RecipeView {
	views := make([]*RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, NewRecipeView(recipe))
	}

	return views
}

// RecipeUsecase defines the interface for recipe-related business operations.
type RecipeUsecase interface {
	ListRecipes(ctx context.Context) ([]*RecipeView, error)
	GetRecipe(ctx context.Context, id int64) (*RecipeView, error)
	SearchRecipes(ctx context.Context, query string) ([]*RecipeView, error)
	ListUserRecipes(ctx context.Context, userID int64) ([]*RecipeView, error)

	CreateRecipe(ctx context.Context, actor *service.IdentityClaims, input *RecipeInput) (*RecipeView, error)
	UpdateRecipe(ctx context.Context, actor *service.IdentityClaims, id int64, input *RecipeInput) (*RecipeView, error)
	DeleteRecipe(ctx context.Context, actor *service.IdentityClaims, id int64) error
	ListOwnRecipes(ctx context.Context, actor *service.IdentityClaims) ([]*RecipeView, error)
	SearchOwnRecipes(ctx context.Context, actor *service.IdentityClaims, query string) ([]*RecipeView, error)

	GenerateShareQR(ctx context.Context, id int64) ([]byte, error)
}
