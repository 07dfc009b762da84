package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"
)

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindAll retrieves every recipe, newest first.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var models []model.RecipeModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return toRecipeDomainSlice(models), nil
}

// FindByUserID retrieves all recipes owned by the given user, newest first.
func (repo *recipeRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	var models []model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by user")
	}

	return toRecipeDomainSlice(models), nil
}

// SearchByTitle retrieves recipes whose title contains the query, case-insensitively.
func (repo *recipeRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.Recipe, error) {
	var models []model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+query+"%").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return toRecipeDomainSlice(models), nil
}

// SearchByTitleForUser retrieves the given user's recipes whose title contains the query.
func (repo *recipeRepository) SearchByTitleForUser(ctx context.Context, userID int64, query string) ([]*entity.Recipe, error) {
	var models []model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND title ILIKE ?", userID, "%"+query+"%").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search recipes by user")
	}

	return toRecipeDomainSlice(models), nil
}

// Create persists a new recipe entity to the database.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("recipe owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update modifies an existing recipe row. The owner column is never touched here.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]any{
			"title":            recipeM.Title,
			"dish_type":        recipeM.DishType,
			"ingredients":      recipeM.Ingredients,
			"instructions":     recipeM.Instructions,
			"preparation_time": recipeM.PreparationTime,
			"origin":           recipeM.Origin,
			"servings":         recipeM.Servings,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes a recipe by its ID.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:              data.ID,
		Title:           data.Title,
		DishType:        data.DishType,
		Ingredients:     data.Ingredients,
		Instructions:    data.Instructions,
		PreparationTime: data.PreparationTime,
		Origin:          data.Origin,
		Servings:        data.Servings,
		UserID:          data.UserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toRecipeDomainSlice(models []model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, toRecipeDomain(&models[i]))
	}

	return recipes
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:              data.ID,
		Title:           data.Title,
		DishType:        data.DishType,
		Ingredients:     data.Ingredients,
		Instructions:    data.Instructions,
		PreparationTime: data.PreparationTime,
		Origin:          data.Origin,
		Servings:        data.Servings,
		UserID:          data.UserID,
	}
}
