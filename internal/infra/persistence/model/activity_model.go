package model

import (
	"time"
)

// ActivityModel mirrors the 'activities' table. EventID carries the publisher's
// idempotency key, so redelivered events collapse onto the unique index.
type ActivityModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EventID    string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Kind       string `gorm:"type:varchar(50);not null"`
	ActorID    int64  `gorm:"not null;index"`
	ActorName  string `gorm:"type:varchar(100)"`
	RecipeID   int64  `gorm:"not null"`
	Subject    string `gorm:"type:varchar(255)"`
	OccurredAt time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
