package config

import (
	"os"
	"strings"
)

// Environment variable names, matching the keys the external tooling exports.
const (
	envDatabaseDSN  = "APP_DATABASE_DSN"
	envDatabaseUser = "APP_DB_USER"
	envDatabasePass = "APP_DB_PASS"
	envDevMode      = "DEV_MODE"
)

// parseEnv overlays Config with values from environment variables. Empty or
// whitespace-only variables are treated as unset and leave the field alone.
func parseEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envDatabaseDSN)); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := strings.TrimSpace(os.Getenv(envDatabaseUser)); v != "" {
		cfg.DatabaseUser = v
	}
	if v := strings.TrimSpace(os.Getenv(envDatabasePass)); v != "" {
		cfg.DatabasePassword = v
	}
	if v := strings.TrimSpace(os.Getenv(envDevMode)); strings.EqualFold(v, "true") {
		cfg.DevMode = true
	}
}
