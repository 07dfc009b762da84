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

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity entry. The unique index on event_id turns
// redelivered events into ErrDuplicateActivity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// FindByActorID retrieves the most recent activity entries for a user, newest first.
func (repo *activityRepository) FindByActorID(ctx context.Context, actorID int64, limit int) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.ActivityModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities by actor")
	}

	activities := make([]*entity.Activity, 0, len(models))
	for i := range models {
		activities = append(activities, toActivityDomain(&models[i]))
	}

	return activities, nil
}

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:         data.ID,
		EventID:    data.EventID,
		Kind:       data.Kind,
		ActorID:    data.ActorID,
		ActorName:  data.ActorName,
		RecipeID:   data.RecipeID,
		Subject:    data.Subject,
		OccurredAt: data.OccurredAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:         data.ID,
		EventID:    data.EventID,
		Kind:       data.Kind,
		ActorID:    data.ActorID,
		ActorName:  data.ActorName,
		RecipeID:   data.RecipeID,
		Subject:    data.Subject,
		OccurredAt: data.OccurredAt,
	}
}
