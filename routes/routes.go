package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DmytroSyrovatskyi/FoodDiary/controllers"
	"github.com/DmytroSyrovatskyi/FoodDiary/middlewares"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
	"github.com/DmytroSyrovatskyi/FoodDiary/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	foodItems := repository.NewFoodItemRepository(db)
	foodCategories := repository.NewFoodCategoryRepository(db)
	meals := repository.NewMealRepository(db)
	mealEntries := repository.NewMealEntryRepository(db)
	summaries := repository.NewDailySummaryRepository(db)
	users := repository.NewUserRepository(db)

	hub := services.NewRealtimeHub()
	foodSvc := services.NewFoodService(foodItems, foodCategories)
	mealSvc := services.NewMealService(meals, mealEntries, foodItems)
	summarySvc := services.NewSummaryService(summaries)
	userSvc := services.NewUserService(users)

	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc, summarySvc, hub)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	userCtl := controllers.NewUserController(userSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		food := api.Group("/food")
		{
			food.GET("", foodCtl.List)
			food.GET("/categories", foodCtl.Categories)
			food.GET("/:id", foodCtl.Get)
			food.POST("", foodCtl.Add)
			food.DELETE("/:id", foodCtl.Delete)
		}

		mealGroup := api.Group("/meals")
		{
			mealGroup.POST("", mealCtl.Create)
			mealGroup.GET("/:id", mealCtl.Get)
			mealGroup.DELETE("/:id", mealCtl.Delete)
			mealGroup.POST("/:id/entries", mealCtl.AddEntry)
		}
		api.DELETE("/entries/:id", mealCtl.DeleteEntry)

		summary := api.Group("/summary")
		{
			summary.GET("", summaryCtl.ByDate)
			summary.GET("/today", summaryCtl.Today)
		}

		user := api.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
		}

		api.GET("/ws/summary", realtimeCtl.SummaryWS)
	}

	return r
}
