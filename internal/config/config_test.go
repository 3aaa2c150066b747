package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "DB_PATH", "CATALOG_PATH", "REDIS_URL", "DISPLAY_CHANNEL", "DISPLAY_BUFFER", "DISPLAY_ROLE", "METRICS_PATH"} {
		t.Setenv(key, "")
	}

	cfg := FromViper(viper.New())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "./data/device.db", cfg.DBPath)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "tablepos:display", cfg.DisplayChannel)
	assert.Equal(t, 16, cfg.DisplayBuffer)
	assert.Equal(t, "terminal", cfg.DisplayRole)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/etc/tablepos/catalog.yaml")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("DISPLAY_BUFFER", "4")
	t.Setenv("DISPLAY_ROLE", "screen")

	cfg := FromViper(viper.New())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/tablepos/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "redis://localhost:6379/2", cfg.RedisURL)
	assert.Equal(t, 4, cfg.DisplayBuffer)
	assert.Equal(t, "screen", cfg.DisplayRole)
}
