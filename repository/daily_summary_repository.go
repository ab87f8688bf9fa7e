package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// DailySummaryRepository defines read access to daily summaries and their
// meal graphs.
type DailySummaryRepository interface {
	// FindByUserAndDate loads the summary row for (userID, date) together
	// with its meals ordered by meal time, every meal's entries and each
	// entry's food item, in one consistent read. date must be a date-only
	// value. Returns apperrors.ErrNotFound when no row exists.
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error)
}

type dailySummaryRepository struct {
	db *gorm.DB
}

// NewDailySummaryRepository creates a new daily summary repository.
func NewDailySummaryRepository(db *gorm.DB) DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

func (r *dailySummaryRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_time ASC")
		}).
		Preload("Meals.Entries").
		Preload("Meals.Entries.FoodItem").
		Where("user_id = ? AND date = ?", userID, date).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}
