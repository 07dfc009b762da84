package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	recipeRepo  repository.RecipeRepository
	guard       *service.OwnershipGuard
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	RecipeRepo  repository.RecipeRepository
	Guard       *service.OwnershipGuard
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		recipeRepo:  params.RecipeRepo,
		guard:       params.Guard,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns every comment, newest first.
func (srv *commentService) ListComments(ctx context.Context) ([]*usecase.CommentView, error) {
	comments, err := srv.commentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return usecase.NewCommentViews(comments), nil
}

// GetComment returns a single comment or the not-found error.
func (srv *commentService) GetComment(ctx context.Context, id int64) (*usecase.CommentView, error) {
	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewCommentView(comment), nil
}

// ListRecipeComments returns all comments on a recipe, with author names.
// The recipe must exist.
func (srv *commentService) ListRecipeComments(ctx context.Context, recipeID int64) ([]*usecase.CommentView, error) {
	if _, err := srv.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe for comments")
	}

	comments, err := srv.commentRepo.FindByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe comments")
	}

	return usecase.NewCommentViews(comments), nil
}

// ListUserComments returns all comments written by the given user.
func (srv *commentService) ListUserComments(ctx context.Context, userID int64) ([]*usecase.CommentView, error) {
	comments, err := srv.commentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user comments")
	}

	return usecase.NewCommentViews(comments), nil
}

// CreateComment persists a new comment authored by the authenticated identity.
// The commented recipe must exist.
func (srv *commentService) CreateComment(ctx context.Context, actor *service.IdentityClaims, input *usecase.CreateCommentInput) (*usecase.CommentView, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, input.RecipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe for comment")
	}

	comment := &entity.Comment{
		Content:  input.Content,
		Rating:   input.Rating,
		UserID:   actor.UserID,
		RecipeID: input.RecipeID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Int64("recipeID", input.RecipeID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Comment created", slog.Int64("commentID", comment.ID), slog.Int64("recipeID", comment.RecipeID))

	event := newActivityEvent(ctx, entity.ActivityCommentCreated, actor, recipe.ID, recipe.Title)
	publishActivity(ctx, srv.log(ctx), srv.publisher, event)

	view := usecase.NewCommentView(comment)
	view.UserName = actor.Username

	return view, nil
}

// UpdateComment modifies a comment after the ownership check. The comment is
// resolved first so a missing id yields 404 regardless of the requester.
func (srv *commentService) UpdateComment(ctx context.Context, actor *service.IdentityClaims, id int64, input *usecase.UpdateCommentInput) (*usecase.CommentView, error) {
	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !srv.guard.Authorize(comment.UserID, actor.UserID) {
		srv.log(ctx).Warn("Comment edit denied", slog.Int64("commentID", id), slog.Int64("ownerID", comment.UserID), slog.Int64("requesterID", actor.UserID))

		return nil, domainerrors.ErrCommentEditForbidden
	}

	comment.Content = input.Content
	comment.Rating = input.Rating

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to update comment")
	}

	updated, err := srv.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewCommentView(updated), nil
}

// DeleteComment removes a comment after the ownership check.
func (srv *commentService) DeleteComment(ctx context.Context, actor *service.IdentityClaims, id int64) error {
	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return err
	}

	if !srv.guard.Authorize(comment.UserID, actor.UserID) {
		srv.log(ctx).Warn("Comment delete denied", slog.Int64("commentID", id), slog.Int64("ownerID", comment.UserID), slog.Int64("requesterID", actor.UserID))

		return domainerrors.ErrCommentDeleteForbidden
	}

	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Int64("commentID", id), slog.Int64("userID", actor.UserID))

	return nil
}

func (srv *commentService) findComment(ctx context.Context, id int64) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}
