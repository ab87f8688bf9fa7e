package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /food?q=apple. A blank q lists the whole catalog
func (fc *FoodController) List(c *gin.Context) {
	items, err := fc.foods.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /food/:id
func (fc *FoodController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := fc.foods.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type foodItemInput struct {
	Name           string  `json:"name"`
	CaloriesPer100 float64 `json:"calories_per_100"`
	ProteinPer100  float64 `json:"protein_per_100"`
	FatPer100      float64 `json:"fat_per_100"`
	CarbsPer100    float64 `json:"carbs_per_100"`
	ServingUnit    string  `json:"serving_unit"`
	FoodCategoryID *uint   `json:"food_category_id"`
}

// POST /food
func (fc *FoodController) Add(c *gin.Context) {
	var input foodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	item := models.FoodItem{
		Name:           input.Name,
		CaloriesPer100: input.CaloriesPer100,
		ProteinPer100:  input.ProteinPer100,
		FatPer100:      input.FatPer100,
		CarbsPer100:    input.CarbsPer100,
		ServingUnit:    input.ServingUnit,
		FoodCategoryID: input.FoodCategoryID,
	}
	if err := fc.foods.Add(c.Request.Context(), &item); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /food/:id. Responds 409 while any saved meal still references the item
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fc.foods.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /food/categories
func (fc *FoodController) Categories(c *gin.Context) {
	categories, err := fc.foods.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
