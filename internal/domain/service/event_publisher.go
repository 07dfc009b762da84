package service

import (
	"context"
	"time"
)

// ActivityEvent represents a domain event emitted when users create content.
// It is consumed asynchronously by the activity worker.
type ActivityEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"` // entity.ActivityRecipeCreated or entity.ActivityCommentCreated
	ActorID    int64     `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	RecipeID   int64     `json:"recipe_id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
