package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("MOTORCYCLE_ID", "")
	t.Setenv("BOOTSTRAP_ON_STARTUP", "")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "better-auth.session_token", cfg.SessionCookie)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.SingleMotorcycle.ID)
	assert.Equal(t, "default-user", cfg.DefaultOwnerID)
	assert.False(t, cfg.RequireAPISession)
	assert.False(t, cfg.BootstrapOnStartup)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "SQLite")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REQUIRE_API_SESSION", "true")
	t.Setenv("BOOTSTRAP_ON_STARTUP", "1")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("MOTORCYCLE_ID", "11111111-1111-1111-1111-111111111111")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.RequireAPISession)
	assert.True(t, cfg.BootstrapOnStartup)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", cfg.SingleMotorcycle.ID)
	assert.Equal(t, "Nyiu", cfg.SingleMotorcycle.Name)
}
