package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// MealEntryRepository defines meal entry persistence operations.
type MealEntryRepository interface {
	Create(ctx context.Context, entry *models.MealEntry) error
	FindByID(ctx context.Context, id uint) (*models.MealEntry, error)
	Delete(ctx context.Context, entry *models.MealEntry) error
}

type mealEntryRepository struct {
	db *gorm.DB
}

// NewMealEntryRepository creates a new meal entry repository.
func NewMealEntryRepository(db *gorm.DB) MealEntryRepository {
	return &mealEntryRepository{db: db}
}

// Create inserts the entry while holding a share lock on its food item. The
// lock conflicts with the FOR UPDATE lock a usage-guarded food item delete
// takes, so either the delete waits for this insert to commit and then sees
// the entry in its usage count, or the item is already deleted here and the
// locked read reports apperrors.ErrNotFound.
func (r *mealEntryRepository) Create(ctx context.Context, entry *models.MealEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.FoodItem
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&item, entry.FoodItemID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		return tx.Create(entry).Error
	})
}

func (r *mealEntryRepository) FindByID(ctx context.Context, id uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *mealEntryRepository) Delete(ctx context.Context, entry *models.MealEntry) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}
