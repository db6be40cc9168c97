package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "spendwise.db", cfg.DatabasePath)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SecureCookies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/data/app.db")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/data/app.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "0")

	_, err := Load()
	assert.Error(t, err)
}
