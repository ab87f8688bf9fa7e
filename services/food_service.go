package services

import (
	"context"
	"strings"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
	"github.com/DmytroSyrovatskyi/FoodDiary/validation"
)

// FoodService owns the food catalog: listing, search, creation and
// usage-guarded deletion of food items.
type FoodService struct {
	items      repository.FoodItemRepository
	categories repository.FoodCategoryRepository
}

func NewFoodService(items repository.FoodItemRepository, categories repository.FoodCategoryRepository) *FoodService {
	return &FoodService{items: items, categories: categories}
}

// List returns every food item ordered by name ascending, each with its
// category resolved.
func (s *FoodService) List(ctx context.Context) ([]models.FoodItem, error) {
	return s.items.List(ctx)
}

// Search matches term case-insensitively against food item names. A blank
// term is equivalent to List.
func (s *FoodService) Search(ctx context.Context, term string) ([]models.FoodItem, error) {
	if strings.TrimSpace(term) == "" {
		return s.items.List(ctx)
	}
	return s.items.SearchByName(ctx, term)
}

// Get returns a single food item by id.
func (s *FoodService) Get(ctx context.Context, id uint) (*models.FoodItem, error) {
	return s.items.FindByID(ctx, id)
}

// Add validates the item and persists it. On any violated constraint it
// returns a ValidationError carrying every message and writes nothing.
func (s *FoodService) Add(ctx context.Context, item *models.FoodItem) error {
	if item.ServingUnit == "" {
		item.ServingUnit = "g"
	}
	if ok, messages := validation.Check(item); !ok {
		return apperrors.NewValidationError(messages...)
	}
	if err := s.items.Create(ctx, item); err != nil {
		return apperrors.StoreFailure("create food item", err)
	}
	return nil
}

// Delete removes a food item unless any meal entry still references it.
// The item row is locked FOR UPDATE before the usage count, and entry
// inserts take a share lock on the same row, so an entry committing
// concurrently is either counted here or blocked until the item is gone.
func (s *FoodService) Delete(ctx context.Context, id uint) error {
	return s.items.WithTransaction(ctx, func(ctx context.Context, repo repository.FoodItemRepository) error {
		item, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		inUse, err := repo.InUse(ctx, id)
		if err != nil {
			return apperrors.StoreFailure("check food item usage", err)
		}
		if inUse {
			return apperrors.ErrFoodItemInUse
		}
		if err := repo.Delete(ctx, item); err != nil {
			return apperrors.StoreFailure("delete food item", err)
		}
		return nil
	})
}

// Categories lists the food categories for the catalog's category picker.
func (s *FoodService) Categories(ctx context.Context) ([]models.FoodCategory, error) {
	return s.categories.List(ctx)
}
