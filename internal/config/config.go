// Package config reads the terminal service settings from the environment.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	// DBPath is the SQLite file backing device storage.
	DBPath string

	// CatalogPath is the YAML catalog. Empty starts with an empty catalog.
	CatalogPath string

	// RedisURL enables the Redis display relay when set.
	RedisURL       string
	DisplayChannel string
	DisplayBuffer  int

	// DisplayRole is "terminal" to push display updates to Redis, or
	// "screen" to follow another terminal's updates from Redis.
	DisplayRole string

	MetricsPath string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_PATH", "./data/device.db")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("DISPLAY_CHANNEL", "tablepos:display")
	v.SetDefault("DISPLAY_BUFFER", 16)
	v.SetDefault("DISPLAY_ROLE", "terminal")
	v.SetDefault("METRICS_PATH", "/metrics")
}

// Load reads a .env file when present and then the process environment.
// Environment variables win over .env entries.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	return FromViper(viper.New())
}

// FromViper builds a Config from v after applying defaults and binding
// the environment.
func FromViper(v *viper.Viper) *Config {
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		Port:           v.GetInt("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		DBPath:         v.GetString("DB_PATH"),
		CatalogPath:    v.GetString("CATALOG_PATH"),
		RedisURL:       v.GetString("REDIS_URL"),
		DisplayChannel: v.GetString("DISPLAY_CHANNEL"),
		DisplayBuffer:  v.GetInt("DISPLAY_BUFFER"),
		DisplayRole:    v.GetString("DISPLAY_ROLE"),
		MetricsPath:    v.GetString("METRICS_PATH"),
	}
}
