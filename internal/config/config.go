package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	ServerPort     string
	DatabaseURL    string
	AllowedOrigins string // comma-separated list; empty disables CORS
	Env            string
	LogLevel       string
}

// Load reads configuration from the environment. DATABASE_URL is required;
// everything else has a default.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "2022"),
		DatabaseURL:    dbURL,
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
