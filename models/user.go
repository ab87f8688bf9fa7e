package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"size:100;not null" json:"username" validate:"required,max=100"`

	DailySummaries []DailySummary `json:"-" validate:"-"`
}
