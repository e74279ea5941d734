package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "eventrix", cfg.Database.Database)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SidebarTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://eventrix.in, https://admin.eventrix.in,")
	t.Setenv("CACHE_SIDEBAR_TTL_SECONDS", "30")
	t.Setenv("REDIS_ENABLED", "FALSE")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://eventrix.in", "https://admin.eventrix.in"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Cache.SidebarTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
}

func TestValidateProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	assert.EqualError(t, err, "JWT secret key must be changed in production")

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	assert.NoError(t, err)

	t.Setenv("ADMIN_PASSWORD", "short")
	_, err = Load()
	assert.Error(t, err)
}
