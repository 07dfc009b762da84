package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	guard      *service.OwnershipGuard
	publisher  service.EventPublisher
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Guard      *service.OwnershipGuard
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		guard:      params.Guard,
		publisher:  params.Publisher,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes returns every recipe, newest first.
func (srv *recipeService) ListRecipes(ctx context.Context) ([]*usecase.RecipeView, error) {
	recipes, err := srv.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return usecase.NewRecipeViews(recipes), nil
}

// GetRecipe returns a single recipe or the not-found error.
func (srv *recipeService) GetRecipe(ctx context.Context, id int64) (*usecase.RecipeView, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecipeView(recipe), nil
}

// SearchRecipes filters recipes by case-insensitive title substring.
// A blank query matches nothing.
func (srv *recipeService) SearchRecipes(ctx context.Context, query string) ([]*usecase.RecipeView, error) {
	if strings.TrimSpace(query) == "" {
		return []*usecase.RecipeView{}, nil
	}

	recipes, err := srv.recipeRepo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return usecase.NewRecipeViews(recipes), nil
}

// ListUserRecipes returns all recipes owned by the given user.
func (srv *recipeService) ListUserRecipes(ctx context.Context, userID int64) ([]*usecase.RecipeView, error) {
	recipes, err := srv.recipeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user recipes")
	}

	return usecase.NewRecipeViews(recipes), nil
}

// ListOwnRecipes returns the requester's recipes.
func (srv *recipeService) ListOwnRecipes(ctx context.Context, actor *service.IdentityClaims) ([]*usecase.RecipeView, error) {
	return srv.ListUserRecipes(ctx, actor.UserID)
}

// SearchOwnRecipes filters within the requester's recipes only.
func (srv *recipeService) SearchOwnRecipes(ctx context.Context, actor *service.IdentityClaims, query string) ([]*usecase.RecipeView, error) {
	if strings.TrimSpace(query) == "" {
		return []*usecase.RecipeView{}, nil
	}

	recipes, err := srv.recipeRepo.SearchByTitleForUser(ctx, actor.UserID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search own recipes")
	}

	return usecase.NewRecipeViews(recipes), nil
}

// CreateRecipe persists a new recipe owned by the authenticated identity.
// Any owner field in the payload is ignored.
func (srv *recipeService) CreateRecipe(ctx context.Context, actor *service.IdentityClaims, input *usecase.RecipeInput) (*usecase.RecipeView, error) {
	recipe := &entity.Recipe{
		Title:           input.Title,
		DishType:        input.DishType,
		Ingredients:     input.Ingredients,
		Instructions:    input.Instructions,
		PreparationTime: input.PreparationTime,
		Origin:          input.Origin,
		Servings:        input.Servings,
		UserID:          actor.UserID,
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.Int64("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Recipe created", slog.Int64("recipeID", recipe.ID), slog.Int64("userID", actor.UserID))

	event := newActivityEvent(ctx, entity.ActivityRecipeCreated, actor, recipe.ID, recipe.Title)
	publishActivity(ctx, srv.log(ctx), srv.publisher, event)

	return usecase.NewRecipeView(recipe), nil
}

// UpdateRecipe modifies a recipe after the ownership check. The resource is
// resolved first so a missing id yields 404 regardless of the requester.
func (srv *recipeService) UpdateRecipe(ctx context.Context, actor *service.IdentityClaims, id int64, input *usecase.RecipeInput) (*usecase.RecipeView, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if !srv.guard.Authorize(recipe.UserID, actor.UserID) {
		srv.log(ctx).Warn("Recipe edit denied", slog.Int64("recipeID", id), slog.Int64("ownerID", recipe.UserID), slog.Int64("requesterID", actor.UserID))

		return nil, domainerrors.ErrRecipeEditForbidden
	}

	recipe.Title = input.Title
	recipe.DishType = input.DishType
	recipe.Ingredients = input.Ingredients
	recipe.Instructions = input.Instructions
	recipe.PreparationTime = input.PreparationTime
	recipe.Origin = input.Origin
	recipe.Servings = input.Servings

	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	updated, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecipeView(updated), nil
}

// DeleteRecipe removes a recipe and its comments in one transaction, after
// the ownership check.
func (srv *recipeService) DeleteRecipe(ctx context.Context, actor *service.IdentityClaims, id int64) error {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return err
	}

	if !srv.guard.Authorize(recipe.UserID, actor.UserID) {
		srv.log(ctx).Warn("Recipe delete denied", slog.Int64("recipeID", id), slog.Int64("ownerID", recipe.UserID), slog.Int64("requesterID", actor.UserID))

		return domainerrors.ErrRecipeDeleteForbidden
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CommentRepo().DeleteByRecipeID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete recipe comments")
		}

		return repoFactory.RecipeRepo().Delete(ctx, id)
	}); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}

		srv.log(ctx).Error("Failed to execute recipe delete transaction", slog.Int64("recipeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Int64("recipeID", id), slog.Int64("userID", actor.UserID))

	return nil
}

// GenerateShareQR renders the share QR code for an existing recipe.
func (srv *recipeService) GenerateShareQR(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.findRecipe(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateRecipeShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (srv *recipeService) findRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}
