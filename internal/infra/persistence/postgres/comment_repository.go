package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// commentWithAuthor carries the join result of a comment row and its author's name.
type commentWithAuthor struct {
	model.CommentModel
	UserName string
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).First(&commentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// FindAll retrieves every comment, newest first.
func (repo *commentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	var models []model.CommentModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, toCommentDomain(&models[i]))
	}

	return comments, nil
}

// FindByRecipeID retrieves all comments on the given recipe together with each
// commenter's display name, newest first.
func (repo *commentRepository) FindByRecipeID(ctx context.Context, recipeID int64) ([]*entity.Comment, error) {
	var rows []commentWithAuthor
	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select("comments.*, users.name AS user_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.recipe_id = ?", recipeID).
		Order("comments.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by recipe")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comment := toCommentDomain(&rows[i].CommentModel)
		comment.UserName = rows[i].UserName
		comments = append(comments, comment)
	}

	return comments, nil
}

// FindByUserID retrieves all comments written by the given user, newest first.
func (repo *commentRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Comment, error) {
	var models []model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by user")
	}

	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, toCommentDomain(&models[i]))
	}

	return comments, nil
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecipeNotFound.WrapMessage("commented recipe does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Update modifies an existing comment row. Author and recipe bindings never change.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"rating":     comment.Rating,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment by its ID.
func (repo *commentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByRecipeID removes all comments attached to the given recipe.
// Deleting zero rows is fine, a recipe may have no comments.
func (repo *commentRepository) DeleteByRecipeID(ctx context.Context, recipeID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments by recipe")
	}

	return nil
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		Rating:    data.Rating,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel for persistence.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		Content:  data.Content,
		Rating:   data.Rating,
		UserID:   data.UserID,
		RecipeID: data.RecipeID,
	}
}
