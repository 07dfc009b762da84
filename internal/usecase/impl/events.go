package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/service"
)

// newActivityEvent builds an event describing a content creation, stamping a
// fresh event id and the request id from the context when present.
func newActivityEvent(ctx context.Context, kind string, actor *service.IdentityClaims, recipeID int64, subject string) *service.ActivityEvent {
	return &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Kind:       kind,
		ActorID:    actor.UserID,
		ActorName:  actor.Username,
		RecipeID:   recipeID,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}

// publishActivity sends the event through the publisher. Publishing is best
// effort: failures are logged and never fail the originating request.
func publishActivity(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.ActivityEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishActivityEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish activity event",
			slog.String("event_id", event.EventID),
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
