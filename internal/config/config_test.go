package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://games.example.com, http://localhost:5173")
	t.Setenv("SESSION_TTL_MINUTES", "2")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://games.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.SessionTTL)
	assert.Same(t, cfg, AppConfig)
}

func TestGetEnvAsIntRejectsGarbage(t *testing.T) {
	t.Setenv("CLEANUP_INTERVAL_MINUTES", "soon")

	assert.Equal(t, 5, GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 5))
}
