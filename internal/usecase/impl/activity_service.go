package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"
)

// activityFeedLimit bounds the feed read to the most recent entries.
const activityFeedLimit = 50

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordActivity persists a published event as a feed entry. Redelivered
// events are recognized by their event id and dropped silently.
func (srv *activityService) RecordActivity(ctx context.Context, event *service.ActivityEvent) error {
	activity := &entity.Activity{
		EventID:    event.EventID,
		Kind:       event.Kind,
		ActorID:    event.ActorID,
		ActorName:  event.ActorName,
		RecipeID:   event.RecipeID,
		Subject:    event.Subject,
		OccurredAt: event.OccurredAt,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrDuplicateActivity) {
			srv.log(ctx).Info("Duplicate activity event, skipping",
				slog.String("event_id", event.EventID),
				slog.String("kind", event.Kind),
			)

			return nil
		}

		return errors.Wrap(err, "failed to record activity")
	}

	srv.log(ctx).Info("Activity recorded",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.Int64("actorID", event.ActorID),
	)

	return nil
}

// ListUserActivity returns the most recent feed entries for a user.
func (srv *activityService) ListUserActivity(ctx context.Context, userID int64) ([]*usecase.ActivityView, error) {
	activities, err := srv.activityRepo.FindByActorID(ctx, userID, activityFeedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user activity")
	}

	views := make([]*usecase.ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, usecase.NewActivityView(activity))
	}

	return views, nil
}
