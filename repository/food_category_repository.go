package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

// FoodCategoryRepository defines food category persistence operations.
// Category deletion is deliberately not exposed.
type FoodCategoryRepository interface {
	Create(ctx context.Context, category *models.FoodCategory) error
	FindByID(ctx context.Context, id uint) (*models.FoodCategory, error)
	List(ctx context.Context) ([]models.FoodCategory, error)
}

type foodCategoryRepository struct {
	db *gorm.DB
}

// NewFoodCategoryRepository creates a new food category repository.
func NewFoodCategoryRepository(db *gorm.DB) FoodCategoryRepository {
	return &foodCategoryRepository{db: db}
}

func (r *foodCategoryRepository) Create(ctx context.Context, category *models.FoodCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *foodCategoryRepository) FindByID(ctx context.Context, id uint) (*models.FoodCategory, error) {
	var category models.FoodCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *foodCategoryRepository) List(ctx context.Context) ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}
