package model

import (
	"time"
)

// CommentModel mirrors the 'comments' table. Rating is optional, so it maps to a
// nullable column.
type CommentModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Content   string   `gorm:"type:text;not null"`
	Rating    *float64 `gorm:"type:numeric(2,1)"`
	UserID    int64    `gorm:"not null;index"`
	RecipeID  int64    `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
