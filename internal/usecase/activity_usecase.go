package usecase

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	"plateful/internal/domain/service"
)

// ActivityView is the public representation of an activity feed entry.
type ActivityView struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	ActorID    int64     `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	RecipeID   int64     `json:"recipe_id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewActivityView maps a domain activity to its public representation.
func NewActivityView(activity *entity.Activity) *ActivityView {
	if activity == nil {
		return nil
	}

	return &ActivityView{
		ID:         activity.ID,
		Kind:       activity.Kind,
		ActorID:    activity.ActorID,
		ActorName:  activity.ActorName,
		RecipeID:   activity.RecipeID,
		Subject:    activity.Subject,
		OccurredAt: activity.OccurredAt,
	}
}

// ActivityUsecase defines the operations around the user activity feed.
// RecordActivity is called by the worker when a published event arrives;
// ListUserActivity serves the read side on the API.
type ActivityUsecase interface {
	RecordActivity(ctx context.Context, event *service.ActivityEvent) error
	ListUserActivity(ctx context.Context, userID int64) ([]*ActivityView, error)
}
