// Package config handles configuration for the moonadmin client: database
// connection settings resolved from environment variables with command-line
// flag overrides, plus the development-mode switch.
package config

import (
	"errors"
	"strings"
)

// Config holds runtime settings for the moonadmin session.
//
// Fields:
//   - DatabaseDSN: PostgreSQL connection string (pgx).
//   - DatabaseUser / DatabasePassword: credentials applied on top of the DSN.
//   - DevMode: when true, the database is migrated and seeded before the
//     interactive session starts.
type Config struct {
	DatabaseDSN      string
	DatabaseUser     string
	DatabasePassword string
	DevMode          bool
}

// ErrMissingDatabaseConfig is returned by Validate when any of the three
// mandatory database settings could not be resolved.
var ErrMissingDatabaseConfig = errors.New(
	"missing database configuration: provide APP_DATABASE_DSN, APP_DB_USER, APP_DB_PASS " +
		"as environment variables or via the -d/-u/-p flags")

// LoadConfig builds a Config by reading environment variables and then
// overlaying command-line flags, so an explicit flag always wins over the
// environment. The returned error is fatal: the session must not start
// without a complete database configuration.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate trims all string settings and reports whether the mandatory
// database settings are present. An empty or whitespace-only value counts
// as absent.
func (c *Config) Validate() error {
	c.DatabaseDSN = strings.TrimSpace(c.DatabaseDSN)
	c.DatabaseUser = strings.TrimSpace(c.DatabaseUser)
	c.DatabasePassword = strings.TrimSpace(c.DatabasePassword)

	if c.DatabaseDSN == "" || c.DatabaseUser == "" || c.DatabasePassword == "" {
		return ErrMissingDatabaseConfig
	}
	return nil
}
