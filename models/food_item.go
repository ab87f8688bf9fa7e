package models

import "gorm.io/gorm"

// FoodItem is catalog reference data. All macro values are per 100 units of
// ServingUnit; daily totals scale each entry by quantity/100.
type FoodItem struct {
	gorm.Model
	Name           string  `gorm:"size:200;not null;index" json:"name" validate:"required,max=200"`
	CaloriesPer100 float64 `gorm:"not null" json:"calories_per_100" validate:"gte=0,lte=5000"`
	ProteinPer100  float64 `gorm:"not null" json:"protein_per_100" validate:"gte=0,lte=100"`
	FatPer100      float64 `gorm:"not null" json:"fat_per_100" validate:"gte=0,lte=100"`
	CarbsPer100    float64 `gorm:"not null" json:"carbs_per_100" validate:"gte=0,lte=100"`
	ServingUnit    string  `gorm:"size:50;default:g" json:"serving_unit" validate:"max=50"`

	FoodCategoryID *uint         `json:"food_category_id,omitempty"`
	Category       *FoodCategory `gorm:"foreignKey:FoodCategoryID" json:"category,omitempty" validate:"-"`

	MealEntries []MealEntry `json:"-" validate:"-"`
}
