package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

func TestCheckFoodItemValid(t *testing.T) {
	item := models.FoodItem{
		Name:           "Apple",
		CaloriesPer100: 52,
		ProteinPer100:  0.3,
		FatPer100:      0.2,
		CarbsPer100:    14,
		ServingUnit:    "g",
	}

	ok, messages := Check(&item)

	assert.True(t, ok)
	assert.Empty(t, messages)
}

func TestCheckFoodItemZeroMacrosValid(t *testing.T) {
	// 0 is inside every declared range
	item := models.FoodItem{Name: "Water", ServingUnit: "ml"}

	ok, messages := Check(&item)

	assert.True(t, ok)
	assert.Empty(t, messages)
}

func TestCheckFoodItemMissingName(t *testing.T) {
	item := models.FoodItem{CaloriesPer100: 100}

	ok, messages := Check(&item)

	assert.False(t, ok)
	assert.NotEmpty(t, messages)
	assert.Contains(t, messages[0], "name is required")
}

func TestCheckFoodItemReportsEveryViolationInFieldOrder(t *testing.T) {
	item := models.FoodItem{
		CaloriesPer100: 9000,
		ProteinPer100:  150,
		ServingUnit:    strings.Repeat("x", 51),
	}

	ok, messages := Check(&item)

	assert.False(t, ok)
	assert.Len(t, messages, 4)
	assert.Contains(t, messages[0], "name")
	assert.Contains(t, messages[1], "calories_per_100")
	assert.Contains(t, messages[2], "protein_per_100")
	assert.Contains(t, messages[3], "serving_unit")
}

func TestCheckFoodItemNameTooLong(t *testing.T) {
	item := models.FoodItem{Name: strings.Repeat("a", 201)}

	ok, messages := Check(&item)

	assert.False(t, ok)
	assert.Contains(t, messages[0], "at most 200 characters")
}

func TestCheckUser(t *testing.T) {
	ok, messages := Check(&models.User{Username: "TestUser1"})
	assert.True(t, ok)
	assert.Empty(t, messages)

	ok, messages = Check(&models.User{})
	assert.False(t, ok)
	assert.Contains(t, messages[0], "username is required")

	ok, _ = Check(&models.User{Username: strings.Repeat("u", 101)})
	assert.False(t, ok)
}

func TestCheckMealEntryQuantityBounds(t *testing.T) {
	ok, _ := Check(&models.MealEntry{Quantity: 100, FoodItemID: 1, MealID: 1})
	assert.True(t, ok)

	ok, messages := Check(&models.MealEntry{Quantity: 0.05, FoodItemID: 1, MealID: 1})
	assert.False(t, ok)
	assert.Contains(t, messages[0], "quantity")

	ok, _ = Check(&models.MealEntry{Quantity: 10001, FoodItemID: 1, MealID: 1})
	assert.False(t, ok)
}

func TestCheckMealType(t *testing.T) {
	ok, _ := Check(&models.Meal{Type: models.MealTypeBreakfast, DailySummaryID: 1})
	assert.True(t, ok)

	ok, messages := Check(&models.Meal{Type: "Brunch", DailySummaryID: 1})
	assert.False(t, ok)
	assert.Contains(t, messages[0], "type must be one of")
}
