package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"
)

// ErrDuplicateActivity marks a redelivered event that was already recorded.
var ErrDuplicateActivity = errors.New("activity already recorded")

// ActivityRepository defines the operations for the activity feed written by
// the event worker.
type ActivityRepository interface {
	// Create persists a new activity entry. Creating an entry whose EventID
	// already exists returns ErrDuplicateActivity.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByActorID retrieves the most recent activity entries for a user,
	// newest first, bounded by limit.
	FindByActorID(ctx context.Context, actorID int64, limit int) ([]*entity.Activity, error)
}
