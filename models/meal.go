package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
	MealTypeOther     MealType = "Other"
)

// MealTypes lists the valid meal types in display order.
func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther}
}

func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther:
		return true
	}
	return false
}

// One Meal (breakfast/lunch/…) under a daily summary. Deleting a meal also
// deletes its entries in the same transaction.
type Meal struct {
	gorm.Model
	Type           MealType  `gorm:"size:20;not null" json:"type" validate:"required,oneof=Breakfast Lunch Dinner Snack Other"`
	MealTime       time.Time `gorm:"not null" json:"meal_time"`
	DailySummaryID uint      `gorm:"not null;index" json:"daily_summary_id"`

	Entries []MealEntry `json:"entries,omitempty" validate:"-"`
}
