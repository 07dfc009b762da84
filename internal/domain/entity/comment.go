package entity

import (
	"time"
)

// Comment is an owned resource attached to a recipe. Rating is optional;
// when present it must stay within [0, 5].
type Comment struct {
	ID        int64
	Content   string
	Rating    *float64
	UserID    int64 // Owner id. Immutable after creation.
	RecipeID  int64
	UserName  string // Commenter's display name, populated on reads that join users.
	CreatedAt time.Time
	UpdatedAt time.Time
}
