package models

import "gorm.io/gorm"

// MealEntry is one line item inside a meal: a food item plus a quantity,
// expressed in units of the food item's serving unit.
type MealEntry struct {
	gorm.Model
	Quantity float64 `gorm:"not null" json:"quantity" validate:"required,gte=0.1,lte=10000"`

	FoodItemID uint     `gorm:"not null;index" json:"food_item_id"`
	FoodItem   FoodItem `json:"food_item,omitempty" validate:"-"`

	MealID uint `gorm:"not null;index" json:"meal_id"`
}
