package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv pulls .env into the process environment. Missing file is fine
// (production sets real env vars).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}
