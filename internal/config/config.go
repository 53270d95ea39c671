package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the admin server
type Config struct {
	DatabaseURL   string
	Port          string
	SessionSecret string
	AppBaseURL    string
}

// Load reads configuration from the environment, layering a local .env
// file underneath if one exists
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppBaseURL:    strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
