package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	ProfileID   string `env:"PROFILE_ID"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"catalog.yaml"`
	FrameRate   int    `env:"FRAME_RATE"   envDefault:"60"`

	// HUDAddr serves the websocket HUD relay when set, e.g. ":8090"
	HUDAddr string `env:"HUD_ADDR"`

	Redis     RedisConfig
	SQLite    SQLiteConfig
	Replenish ReplenishConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL falls back to
// SQLite, then to the in-memory store.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// SQLiteConfig points at a local state file, used when Redis is not configured
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH"`
}

// ReplenishConfig holds scheduler and engine settings
type ReplenishConfig struct {
	Mode       string        `env:"REPLENISH_MODE"       envDefault:"idle"`
	IdleTime   time.Duration `env:"REPLENISH_IDLE_TIME"  envDefault:"5s"`
	Interval   time.Duration `env:"REPLENISH_INTERVAL"   envDefault:"1s"`
	Percentage float64       `env:"REPLENISH_PERCENTAGE" envDefault:"10"`
	Silent     bool          `env:"REPLENISH_SILENT"`

	ExcludedCategories []string `env:"REPLENISH_EXCLUDED_CATEGORIES" envDefault:"blue" envSeparator:","`
	AllowExcluded      bool     `env:"REPLENISH_ALLOW_EXCLUDED"`

	FallbackCurrency string  `env:"REPLENISH_FALLBACK_CURRENCY"`
	FallbackFlatCost float64 `env:"REPLENISH_FALLBACK_FLAT_COST"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if cfg.ProfileID == "" {
		return nil, fmt.Errorf("PROFILE_ID is required")
	}
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("FRAME_RATE must be positive")
	}

	switch cfg.Replenish.Mode {
	case "idle":
		if cfg.Replenish.IdleTime <= 0 {
			return nil, fmt.Errorf("REPLENISH_IDLE_TIME must be positive")
		}
	case "gradual":
		if cfg.Replenish.Interval <= 0 {
			return nil, fmt.Errorf("REPLENISH_INTERVAL must be positive")
		}
	default:
		return nil, fmt.Errorf("REPLENISH_MODE must be idle or gradual, got %q", cfg.Replenish.Mode)
	}

	if cfg.Replenish.FallbackFlatCost < 0 {
		return nil, fmt.Errorf("REPLENISH_FALLBACK_FLAT_COST cannot be negative")
	}

	return cfg, nil
}

// FrameDuration is the time between two frames
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
