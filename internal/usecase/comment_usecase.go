package usecase

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	"plateful/internal/domain/service"
)

// --- Input DTOs ---

// CreateCommentInput defines the fields required to comment on a recipe.
// The author is never part of the payload.
type CreateCommentInput struct {
	Content  string   `json:"content" validate:"required"`
	RecipeID int64    `json:"recipe_id" validate:"required"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// UpdateCommentInput defines the fields a comment author may change.
type UpdateCommentInput struct {
	Content string   `json:"content" validate:"required"`
	Rating  *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// --- Output DTOs ---

// CommentView is the public representation of a comment. UserName is only
// populated on listings that join the author.
type CommentView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Rating    *float64  `json:"rating,omitempty"`
	UserID    int64     `json:"user_id"`
	RecipeID  int64     `json:"recipe_id"`
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentView maps a domain comment to its public representation.
func NewCommentView(comment *entity.Comment) *CommentView {
	if comment == nil {
		return nil
	}

	return &CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Rating:    comment.Rating,
		UserID:    comment.UserID,
		RecipeID:  comment.RecipeID,
		UserName:  comment.UserName,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// NewCommentViews maps a slice of domain comments.
func NewCommentViews(comments []*entity.Comment) []*CommentView {
	views := make([]*CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, NewCommentView(comment))
	}

	return views
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	ListComments(ctx context.Context) ([]*CommentView, error)
	GetComment(ctx context.Context, id int64) (*CommentView, error)
	ListRecipeComments(ctx context.Context, recipeID int64) ([]*CommentView, error)
	ListUserComments(ctx context.Context, userID int64) ([]*CommentView, error)

	CreateComment(ctx context.Context, actor *service.IdentityClaims, input *CreateCommentInput) (*CommentView, error)
	UpdateComment(ctx context.Context, actor *service.IdentityClaims, id int64, input *UpdateCommentInput) (*CommentView, error)
	DeleteComment(ctx context.Context, actor *service.IdentityClaims, id int64) error
}
