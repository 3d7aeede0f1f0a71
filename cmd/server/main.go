package main

import (
	"os"

	"github.com/joho/godotenv"

	"tailormade/backend/internal/app"
)

func main() {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}
	app.Run()
}
