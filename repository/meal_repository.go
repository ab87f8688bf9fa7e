package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// MealRepository defines meal persistence operations, including the pieces
// the meal aggregate owns: its entries and the lazy creation of the daily
// summary a meal hangs under.
type MealRepository interface {
	Create(ctx context.Context, meal *models.Meal) error
	FindByID(ctx context.Context, id uint) (*models.Meal, error)
	// FindByIDWithEntries loads the meal together with its entries and each
	// entry's food item in one read.
	FindByIDWithEntries(ctx context.Context, id uint) (*models.Meal, error)
	// GetOrCreateSummary returns the daily summary row for (userID, date),
	// creating it when none exists. date must be a date-only value.
	GetOrCreateSummary(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error)
	// DeleteEntriesByMeal removes every meal entry with the given meal id.
	DeleteEntriesByMeal(ctx context.Context, mealID uint) error
	Delete(ctx context.Context, meal *models.Meal) error
	// WithTransaction runs fn against a repository bound to a single
	// database transaction, rolling back when fn returns an error.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MealRepository) error) error
}

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) FindByID(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.WithContext(ctx).First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByIDWithEntries(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).
		Preload("Entries").
		Preload("Entries.FoodItem").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetOrCreateSummary(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&summary).Error
	if err == nil {
		return &summary, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// ON CONFLICT DO NOTHING keeps a lost first-meal-of-day insert race
	// from raising a unique violation, which would abort the surrounding
	// transaction; the winner's row is read back instead.
	summary = models.DailySummary{UserID: userID, Date: date}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.ID != 0 {
		return &summary, nil
	}
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *mealRepository) DeleteEntriesByMeal(ctx context.Context, mealID uint) error {
	return r.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Delete(&models.MealEntry{}).Error
}

func (r *mealRepository) Delete(ctx context.Context, meal *models.Meal) error {
	return r.db.WithContext(ctx).Delete(meal).Error
}

func (r *mealRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MealRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &mealRepository{db: tx})
	})
}
