package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIBaseURL   = "CALC_API_URL"
	EnvDatabasePath = "CALC_DATABASE_PATH"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; it never overrides
// variables already set in the process environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
