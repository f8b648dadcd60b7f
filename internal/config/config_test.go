package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TrimsValues(t *testing.T) {
	c := &Config{
		DatabaseDSN:      "  postgres://localhost:5432/missions  ",
		DatabaseUser:     " admin ",
		DatabasePassword: " secret ",
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, "postgres://localhost:5432/missions", c.DatabaseDSN)
	assert.Equal(t, "admin", c.DatabaseUser)
	assert.Equal(t, "secret", c.DatabasePassword)
}

func TestValidate_MissingSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "all missing", cfg: Config{}},
		{name: "no dsn", cfg: Config{DatabaseUser: "u", DatabasePassword: "p"}},
		{name: "no user", cfg: Config{DatabaseDSN: "dsn", DatabasePassword: "p"}},
		{name: "no password", cfg: Config{DatabaseDSN: "dsn", DatabaseUser: "u"}},
		{name: "whitespace only", cfg: Config{DatabaseDSN: "   ", DatabaseUser: "u", DatabasePassword: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.ErrorIs(t, err, ErrMissingDatabaseConfig)
		})
	}
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	os.Args = []string{"cmd"}
	t.Setenv("APP_DATABASE_DSN", "postgres://localhost:5432/missions")
	t.Setenv("APP_DB_USER", "admin")
	t.Setenv("APP_DB_PASS", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/missions", cfg.DatabaseDSN)
	assert.Equal(t, "admin", cfg.DatabaseUser)
	assert.Equal(t, "secret", cfg.DatabasePassword)
	assert.False(t, cfg.DevMode)
}

func TestLoadConfig_MissingIsFatal(t *testing.T) {
	os.Args = []string{"cmd"}
	t.Setenv("APP_DATABASE_DSN", "")
	t.Setenv("APP_DB_USER", "")
	t.Setenv("APP_DB_PASS", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingDatabaseConfig)
}

func TestParseEnv_DevMode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "TRUE", want: true},
		{value: "false", want: false},
		{value: "1", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run("DEV_MODE="+tt.value, func(t *testing.T) {
			t.Setenv("DEV_MODE", tt.value)
			cfg := &Config{}
			parseEnv(cfg)
			assert.Equal(t, tt.want, cfg.DevMode)
		})
	}
}
