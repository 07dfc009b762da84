package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// FindAll retrieves every comment, newest first.
	FindAll(ctx context.Context) ([]*entity.Comment, error)

	// FindByRecipeID retrieves all comments on the given recipe, including
	// the commenter's display name.
	FindByRecipeID(ctx context.Context, recipeID int64) ([]*entity.Comment, error)

	// FindByUserID retrieves all comments written by the given user.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies an existing comment entity in the storage.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByRecipeID removes all comments attached to the given recipe.
	DeleteByRecipeID(ctx context.Context, recipeID int64) error
}
