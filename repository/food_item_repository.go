package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// FoodItemRepository defines food catalog persistence operations.
type FoodItemRepository interface {
	Create(ctx context.Context, item *models.FoodItem) error
	FindByID(ctx context.Context, id uint) (*models.FoodItem, error)
	// FindByIDForUpdate loads the food item holding a FOR UPDATE row lock
	// until the surrounding transaction ends, so deletes serialize against
	// concurrent meal entry inserts taking a share lock on the same row.
	FindByIDForUpdate(ctx context.Context, id uint) (*models.FoodItem, error)
	// List returns every food item ordered by name ascending, with its
	// category resolved.
	List(ctx context.Context) ([]models.FoodItem, error)
	// SearchByName returns food items whose name contains term,
	// case-insensitively, ordered by name ascending.
	SearchByName(ctx context.Context, term string) ([]models.FoodItem, error)
	// InUse reports whether any meal entry references the food item.
	InUse(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, item *models.FoodItem) error
	// WithTransaction runs fn against a repository bound to a single
	// database transaction, rolling back when fn returns an error.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo FoodItemRepository) error) error
}

type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a new food item repository.
func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) Create(ctx context.Context, item *models.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodItemRepository) FindByID(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := r.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepository) List(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order(foodItemOrder).
		Find(&items).Error
	return items, err
}

// byte-wise collation keeps the ordering case-sensitive and locale
// independent; the id key makes it stable for equal names
const foodItemOrder = `name COLLATE "C" ASC, id ASC`

func (r *foodItemRepository) SearchByName(ctx context.Context, term string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("LOWER(name) LIKE ?", pattern).
		Order(foodItemOrder).
		Find(&items).Error
	return items, err
}

func (r *foodItemRepository) InUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Where("food_item_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *foodItemRepository) Delete(ctx context.Context, item *models.FoodItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *foodItemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo FoodItemRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &foodItemRepository{db: tx})
	})
}
