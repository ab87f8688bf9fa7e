package services

import (
	"context"
	"errors"
	"time"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
)

// Totals holds the four derived nutrient sums for one day.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Aggregate sums the nutrient contributions of every entry in every meal.
// Each entry contributes per100 * quantity/100; the quantity is always read
// as "amount per 100 units of the serving unit", including for items whose
// natural serving is per piece. That uniform scaling is a known
// simplification.
//
// Aggregate is pure: it never mutates meals and, given the same input,
// always returns bit-identical totals.
func Aggregate(meals []models.Meal) Totals {
	var t Totals
	for _, meal := range meals {
		for _, entry := range meal.Entries {
			factor := entry.Quantity / 100.0
			t.Calories += entry.FoodItem.CaloriesPer100 * factor
			t.Protein += entry.FoodItem.ProteinPer100 * factor
			t.Fat += entry.FoodItem.FatPer100 * factor
			t.Carbs += entry.FoodItem.CarbsPer100 * factor
		}
	}
	return t
}

// SummaryService computes the per-day nutrition totals. Totals are derived
// on every read and never trusted from storage.
type SummaryService struct {
	summaries repository.DailySummaryRepository
}

func NewSummaryService(summaries repository.DailySummaryRepository) *SummaryService {
	return &SummaryService{summaries: summaries}
}

// ByDate is the report path: it returns the summary for (userID, date) with
// freshly computed totals, or apperrors.ErrNotFound when the user logged
// nothing that day.
func (s *SummaryService) ByDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	summary, err := s.summaries.FindByUserAndDate(ctx, userID, DateOnly(date))
	if err != nil {
		return nil, err
	}
	return withTotals(summary), nil
}

// ForDay is the live day-view path: when no summary row exists yet it
// synthesizes an empty one with zero totals instead of failing. The
// synthesized summary is never persisted.
func (s *SummaryService) ForDay(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	day := DateOnly(date)
	summary, err := s.summaries.FindByUserAndDate(ctx, userID, day)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &models.DailySummary{UserID: userID, Date: day}, nil
	}
	if err != nil {
		return nil, err
	}
	return withTotals(summary), nil
}

// withTotals returns a copy of summary with the derived totals populated,
// leaving the loaded row untouched.
func withTotals(summary *models.DailySummary) *models.DailySummary {
	t := Aggregate(summary.Meals)
	out := *summary
	out.TotalCalories = t.Calories
	out.TotalProtein = t.Protein
	out.TotalFat = t.Fat
	out.TotalCarbs = t.Carbs
	return &out
}
