// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         int
	DatabasePath string
	LogLevel     string
	// APIToken protects the API with bearer auth; empty disables auth
	APIToken string
	// AlphaVantageKey enables the fallback quote provider; empty
	// disables it
	AlphaVantageKey string
	DevMode         bool
	// SeedData populates a starter portfolio into an empty store
	SeedData bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8080),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/tracker.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIToken:        getEnv("API_TOKEN", ""),
		AlphaVantageKey: getEnv("ALPHA_VANTAGE_API_KEY", ""),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		SeedData:        getEnvAsBool("SEED_DATA", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %d", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
