package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/services"
)

type MealController struct {
	meals     *services.MealService
	summaries *services.SummaryService
	hub       *services.RealtimeHub
}

func NewMealController(meals *services.MealService, summaries *services.SummaryService, hub *services.RealtimeHub) *MealController {
	return &MealController{meals: meals, summaries: summaries, hub: hub}
}

type createMealInput struct {
	Type     models.MealType `json:"type"`
	Date     *time.Time      `json:"date"`
	MealTime *time.Time      `json:"meal_time"`
}

// POST /meals. Date and meal time default to now.
func (mc *MealController) Create(c *gin.Context) {
	var input createMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	now := time.Now()
	date, mealTime := now, now
	if input.Date != nil {
		date = *input.Date
	}
	if input.MealTime != nil {
		mealTime = *input.MealTime
	}

	userID := currentUserID(c)
	meal, err := mc.meals.Create(c.Request.Context(), userID, date, input.Type, mealTime)
	if err != nil {
		abortWithError(c, err)
		return
	}
	mc.pushDayTotals(userID)
	c.JSON(http.StatusCreated, meal)
}

// GET /meals/:id. Entries come with food items, ordered by food name
func (mc *MealController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	meal, err := mc.meals.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id. Also removes every entry of the meal.
func (mc *MealController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := mc.meals.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	mc.pushDayTotals(currentUserID(c))
	c.Status(http.StatusNoContent)
}

type addEntryInput struct {
	FoodItemID uint    `json:"food_item_id"`
	Quantity   float64 `json:"quantity"`
}

// POST /meals/:id/entries
func (mc *MealController) AddEntry(c *gin.Context) {
	mealID, ok := idParam(c)
	if !ok {
		return
	}
	var input addEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	userID := currentUserID(c)
	entry, err := mc.meals.AddEntry(c.Request.Context(), mealID, input.FoodItemID, input.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	mc.pushDayTotals(userID)
	c.JSON(http.StatusCreated, entry)
}

// DELETE /entries/:id
func (mc *MealController) DeleteEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := mc.meals.DeleteEntry(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	mc.pushDayTotals(currentUserID(c))
	c.Status(http.StatusNoContent)
}

// pushDayTotals recomputes today's totals and broadcasts them to the user's
// open day views. Failures here never affect the request that triggered the
// push.
func (mc *MealController) pushDayTotals(userID uint) {
	summary, err := mc.summaries.ForDay(context.Background(), userID, time.Now())
	if err != nil {
		return
	}
	mc.hub.BroadcastSummary(userID, summary)
}
