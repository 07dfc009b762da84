package entity

import (
	"time"
)

// Recipe is an owned resource: UserID is recorded once at creation from the
// requester's identity and never changes afterwards.
type Recipe struct {
	ID              int64
	Title           string
	DishType        string
	Ingredients     string
	Instructions    string
	PreparationTime string
	Origin          string
	Servings        int
	UserID          int64 // Owner id. Immutable after creation.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
