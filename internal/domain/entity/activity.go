package entity

import (
	"time"
)

// Activity kinds recorded by the worker.
const (
	ActivityRecipeCreated  = "recipe_created"
	ActivityCommentCreated = "comment_created"
)

// Activity is a feed entry persisted asynchronously from published events.
// EventID deduplicates redelivered Pub/Sub messages.
type Activity struct {
	ID         int64
	EventID    string
	Kind       string
	ActorID    int64
	ActorName  string
	RecipeID   int64
	Subject    string // Human-readable subject, e.g. the recipe title.
	OccurredAt time.Time
	CreatedAt  time.Time
}
