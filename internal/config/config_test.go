package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tool-replenish/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROFILE_ID", "slot-1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "slot-1", cfg.ProfileID)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.SQLite.Path)
	assert.Empty(t, cfg.HUDAddr)
	assert.Equal(t, "idle", cfg.Replenish.Mode)
	assert.Equal(t, 5*time.Second, cfg.Replenish.IdleTime)
	assert.Equal(t, 10.0, cfg.Replenish.Percentage)
	assert.Equal(t, []string{"blue"}, cfg.Replenish.ExcludedCategories)
	assert.False(t, cfg.Replenish.AllowExcluded)
	assert.False(t, cfg.Replenish.Silent)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PROFILE_ID", "slot-2")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("SQLITE_PATH", "data/tools.db")
	t.Setenv("FRAME_RATE", "30")
	t.Setenv("HUD_ADDR", ":8090")
	t.Setenv("REPLENISH_MODE", "gradual")
	t.Setenv("REPLENISH_INTERVAL", "250ms")
	t.Setenv("REPLENISH_PERCENTAGE", "25")
	t.Setenv("REPLENISH_SILENT", "true")
	t.Setenv("REPLENISH_EXCLUDED_CATEGORIES", "blue,white")
	t.Setenv("REPLENISH_FALLBACK_CURRENCY", "beads")
	t.Setenv("REPLENISH_FALLBACK_FLAT_COST", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, "data/tools.db", cfg.SQLite.Path)
	assert.Equal(t, ":8090", cfg.HUDAddr)
	assert.Equal(t, "gradual", cfg.Replenish.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.Replenish.Interval)
	assert.Equal(t, 25.0, cfg.Replenish.Percentage)
	assert.True(t, cfg.Replenish.Silent)
	assert.Equal(t, []string{"blue", "white"}, cfg.Replenish.ExcludedCategories)
	assert.Equal(t, "beads", cfg.Replenish.FallbackCurrency)
	assert.Equal(t, 2.0, cfg.Replenish.FallbackFlatCost)
	assert.Equal(t, time.Second/30, cfg.FrameDuration())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		err  string
	}{
		{name: "missing profile", env: map[string]string{}, err: "PROFILE_ID is required"},
		{name: "unknown mode", env: map[string]string{"PROFILE_ID": "p", "REPLENISH_MODE": "always"}, err: "REPLENISH_MODE"},
		{name: "zero idle time", env: map[string]string{"PROFILE_ID": "p", "REPLENISH_IDLE_TIME": "0s"}, err: "REPLENISH_IDLE_TIME"},
		{name: "bad frame rate", env: map[string]string{"PROFILE_ID": "p", "FRAME_RATE": "0"}, err: "FRAME_RATE"},
		{name: "unparsable duration", env: map[string]string{"PROFILE_ID": "p", "REPLENISH_INTERVAL": "soon"}, err: "parse env"},
		{name: "negative flat cost", env: map[string]string{"PROFILE_ID": "p", "REPLENISH_FALLBACK_FLAT_COST": "-1"}, err: "REPLENISH_FALLBACK_FLAT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROFILE_ID", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}
