package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
	"github.com/DmytroSyrovatskyi/FoodDiary/validation"
)

// MealService composes meals: creating them under the right daily summary,
// attaching and detaching entries, and cascading deletes.
type MealService struct {
	meals   repository.MealRepository
	entries repository.MealEntryRepository
	foods   repository.FoodItemRepository
}

func NewMealService(meals repository.MealRepository, entries repository.MealEntryRepository, foods repository.FoodItemRepository) *MealService {
	return &MealService{meals: meals, entries: entries, foods: foods}
}

// DateOnly strips the time component, normalizing to midnight UTC. All
// summary lookups key on this value.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create logs a meal for (userID, date). The day's summary is created lazily
// when the first meal of that day is logged; summary lookup-or-create and
// the meal insert run in one transaction.
func (s *MealService) Create(ctx context.Context, userID uint, date time.Time, mealType models.MealType, mealTime time.Time) (*models.Meal, error) {
	if !mealType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("type must be one of: %v", models.MealTypes()))
	}
	day := DateOnly(date)

	var created *models.Meal
	err := s.meals.WithTransaction(ctx, func(ctx context.Context, repo repository.MealRepository) error {
		summary, err := repo.GetOrCreateSummary(ctx, userID, day)
		if err != nil {
			return apperrors.StoreFailure("get or create daily summary", err)
		}
		meal := &models.Meal{Type: mealType, MealTime: mealTime, DailySummaryID: summary.ID}
		if err := repo.Create(ctx, meal); err != nil {
			return apperrors.StoreFailure("create meal", err)
		}
		created = meal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddEntry attaches quantity units of a food item to a meal. The service
// guard rejects quantities outside (0, 10000]; the entry's own declared
// lower bound of 0.1 is enforced by the validation engine on top of that.
func (s *MealService) AddEntry(ctx context.Context, mealID, foodItemID uint, quantity float64) (*models.MealEntry, error) {
	if quantity <= 0 || quantity > 10000 {
		return nil, apperrors.NewValidationError("quantity must be greater than zero and at most 10000")
	}
	if _, err := s.meals.FindByID(ctx, mealID); err != nil {
		return nil, err
	}
	if _, err := s.foods.FindByID(ctx, foodItemID); err != nil {
		return nil, err
	}

	entry := &models.MealEntry{MealID: mealID, FoodItemID: foodItemID, Quantity: quantity}
	if ok, messages := validation.Check(entry); !ok {
		return nil, apperrors.NewValidationError(messages...)
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		// the locked re-check inside Create can lose the item to a
		// concurrent delete after the existence check above passed
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.StoreFailure("create meal entry", err)
	}
	return entry, nil
}

// Get loads a meal with its entries and their food items, entries ordered by
// food name for the details view.
func (s *MealService) Get(ctx context.Context, id uint) (*models.Meal, error) {
	meal, err := s.meals.FindByIDWithEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meal.Entries, func(i, j int) bool {
		return meal.Entries[i].FoodItem.Name < meal.Entries[j].FoodItem.Name
	})
	return meal, nil
}

// Delete removes a meal and all of its entries as one logical operation. No
// entry with this meal id survives, even though the store has no native
// cascade.
func (s *MealService) Delete(ctx context.Context, id uint) error {
	return s.meals.WithTransaction(ctx, func(ctx context.Context, repo repository.MealRepository) error {
		meal, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteEntriesByMeal(ctx, meal.ID); err != nil {
			return apperrors.StoreFailure("delete meal entries", err)
		}
		if err := repo.Delete(ctx, meal); err != nil {
			return apperrors.StoreFailure("delete meal", err)
		}
		return nil
	})
}

// DeleteEntry removes a single meal entry. No cascading.
func (s *MealService) DeleteEntry(ctx context.Context, id uint) error {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, entry); err != nil {
		return apperrors.StoreFailure("delete meal entry", err)
	}
	return nil
}
