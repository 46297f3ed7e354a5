package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// MustGetEnv gets a required environment variable and exits the process if it
// is missing. Used for secrets that must never ship with literal fallbacks.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		slog.Error("missing required environment variable", "key", key)
		os.Exit(1)
	}
	return value
}

// JWTSecret returns the token signing secret.
func JWTSecret() string {
	return MustGetEnv("JWT_SECRET")
}

// AdminUsername returns the single allowed admin username, lowercased by
// convention in the seed data.
func AdminUsername() string {
	return MustGetEnv("ADMIN_USERNAME")
}
