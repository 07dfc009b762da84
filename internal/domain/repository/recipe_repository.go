package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// FindAll retrieves every recipe, newest first.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindByUserID retrieves all recipes owned by the given user.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// SearchByTitle retrieves recipes whose title contains the query,
	// case-insensitively.
	SearchByTitle(ctx context.Context, query string) ([]*entity.Recipe, error)

	// SearchByTitleForUser retrieves the given user's recipes whose title
	// contains the query, case-insensitively.
	SearchByTitleForUser(ctx context.Context, userID int64, query string) ([]*entity.Recipe, error)

	// Create persists a new recipe entity to the storage.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe entity in the storage.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe by its ID.
	Delete(ctx context.Context, id int64) error
}
