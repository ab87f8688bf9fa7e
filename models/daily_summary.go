package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the per-user, per-date aggregation root under which meals
// are grouped. One row per (user_id, date); the composite unique index
// enforces that even under concurrent first-meal-of-day creation.
//
// The four totals are always recomputed from the meal entries on read. They
// are never written to the database.
type DailySummary struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_summary_user_date" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_summary_user_date" json:"date"`

	TotalCalories float64 `gorm:"-" json:"total_calories"`
	TotalProtein  float64 `gorm:"-" json:"total_protein"`
	TotalFat      float64 `gorm:"-" json:"total_fat"`
	TotalCarbs    float64 `gorm:"-" json:"total_carbs"`

	Meals []Meal `json:"meals,omitempty" validate:"-"`
}
