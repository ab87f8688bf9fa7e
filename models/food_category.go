package models

import "gorm.io/gorm"

type FoodCategory struct {
	gorm.Model
	Name string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`

	FoodItems []FoodItem `json:"-" validate:"-"`
}
