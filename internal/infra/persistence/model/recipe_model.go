package model

import (
	"time"
)

// RecipeModel mirrors the 'recipes' table. UserID references users.id and never
// changes after creation.
type RecipeModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(255);not null"`
	DishType        string `gorm:"type:varchar(100)"`
	Ingredients     string `gorm:"type:text;not null"`
	Instructions    string `gorm:"type:text;not null"`
	PreparationTime string `gorm:"type:varchar(100)"`
	Origin          string `gorm:"type:varchar(100)"`
	Servings        int
	UserID          int64 `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
