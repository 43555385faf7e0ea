package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env or the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigDefault is Config with a fallback for unset keys.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
