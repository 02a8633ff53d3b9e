package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, 12*time.Hour, cfg.TokenExpires)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("STATIC_DIR", "public")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("JWT_TTL_HOURS", "2")

	cfg := Load()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpires)
	assert.True(t, cfg.AdminEnabled())
}
