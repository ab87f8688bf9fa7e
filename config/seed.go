package config

import (
	"gorm.io/gorm"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
)

func uintPtr(v uint) *uint { return &v }

// SeedDemoData loads a small demo catalog and user for local development.
// Safe to call repeatedly.
func SeedDemoData(db *gorm.DB) error {
	user := models.User{Username: "TestUser1"}
	if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
		return err
	}

	categoryNames := []string{"Fruits", "Meat & Poultry", "Bread", "Dairy & Eggs", "Vegetables", "Fats"}
	categoryIDs := make(map[string]uint, len(categoryNames))
	for _, name := range categoryNames {
		category := models.FoodCategory{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		categoryIDs[name] = category.ID
	}

	items := []models.FoodItem{
		{Name: "Apple", CaloriesPer100: 52, ProteinPer100: 0.3, FatPer100: 0.2, CarbsPer100: 14, ServingUnit: "g", FoodCategoryID: uintPtr(categoryIDs["Fruits"])},
		{Name: "Chicken breast", CaloriesPer100: 165, ProteinPer100: 31, FatPer100: 3.6, CarbsPer100: 0, ServingUnit: "g", FoodCategoryID: uintPtr(categoryIDs["Meat & Poultry"])},
		{Name: "Rye bread", CaloriesPer100: 259, ProteinPer100: 8.5, FatPer100: 3.3, CarbsPer100: 48, ServingUnit: "slice", FoodCategoryID: uintPtr(categoryIDs["Bread"])},
		{Name: "Egg", CaloriesPer100: 78, ProteinPer100: 6, FatPer100: 5, CarbsPer100: 0.6, ServingUnit: "pcs", FoodCategoryID: uintPtr(categoryIDs["Dairy & Eggs"])},
		{Name: "Milk 2%", CaloriesPer100: 50, ProteinPer100: 3.3, FatPer100: 2, CarbsPer100: 4.8, ServingUnit: "ml", FoodCategoryID: uintPtr(categoryIDs["Dairy & Eggs"])},
		{Name: "Carrot", CaloriesPer100: 41, ProteinPer100: 0.9, FatPer100: 0.2, CarbsPer100: 10, ServingUnit: "g", FoodCategoryID: uintPtr(categoryIDs["Vegetables"])},
		{Name: "Olive oil", CaloriesPer100: 884, ProteinPer100: 0, FatPer100: 100, CarbsPer100: 0, ServingUnit: "ml", FoodCategoryID: uintPtr(categoryIDs["Fats"])},
	}
	for _, item := range items {
		if err := db.Where("name = ?", item.Name).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
