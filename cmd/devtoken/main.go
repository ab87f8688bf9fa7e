// Prints a signed bearer token for a user id, for local testing against a
// running instance. Requires JWT_SECRET in the environment or .env.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/DmytroSyrovatskyi/FoodDiary/utils"
)

func main() {
	userID := flag.Uint("user", 1, "user id to embed in the token")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	token, err := utils.GenerateJWT(uint(*userID))
	if err != nil {
		log.Fatalf("signing token failed: %v", err)
	}
	fmt.Println(token)
}
