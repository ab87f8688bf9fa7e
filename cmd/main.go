package main

import (
	"log"
	"os"

	"github.com/DmytroSyrovatskyi/FoodDiary/config"
	"github.com/DmytroSyrovatskyi/FoodDiary/logging"
	"github.com/DmytroSyrovatskyi/FoodDiary/routes"
)

func main() {
	logging.Setup()
	db := config.InitDB()

	if os.Getenv("SEED_DEMO") == "true" {
		if err := config.SeedDemoData(db); err != nil {
			log.Fatalf("seeding demo data failed: %v", err)
		}
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
