package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/config"
	"github.com/KirkDiggler/tool-replenish/internal/domain/hero"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	"github.com/KirkDiggler/tool-replenish/internal/events"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/services"
	"github.com/KirkDiggler/tool-replenish/internal/services/scheduler"
	"github.com/KirkDiggler/tool-replenish/internal/testutils"
)

func testConfig() *config.Config {
	return &config.Config{
		ProfileID: "slot-1",
		FrameRate: 60,
		Replenish: config.ReplenishConfig{
			Mode:               "idle",
			IdleTime:           time.Second,
			ExcludedCategories: []string{"blue"},
		},
	}
}

func TestNewProvider_IdleRefill(t *testing.T) {
	ctx := context.Background()
	c, err := catalog.New(testutils.CreateTestTool("pin", "shards", 4, 8))
	require.NoError(t, err)

	bus := events.NewBus()
	provider, err := services.NewProvider(&services.ProviderConfig{
		Config:   testConfig(),
		Catalog:  c,
		EventBus: bus,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeToolsReplenished))

	repo := provider.Repository
	require.NoError(t, repo.Equip(ctx, "slot-1", "pin"))
	require.NoError(t, repo.SetCurrency(ctx, "slot-1", "shards", 20))

	result, err := provider.Scheduler.Update(ctx, scheduler.Frame{Delta: 2 * time.Second, Hero: &hero.State{AtBench: true}})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Replenished)

	data, err := repo.GetToolData(ctx, "slot-1", "pin")
	require.NoError(t, err)
	assert.Equal(t, 4, data.AmountLeft)

	amount, err := repo.GetCurrencyAmount(ctx, "slot-1", tools.CurrencyKind("shards"))
	require.NoError(t, err)
	assert.Equal(t, 12.0, amount)
}

func TestNewProvider_SQLiteGradualRefill(t *testing.T) {
	ctx := context.Background()
	c, err := catalog.New(testutils.CreateTestTool("pin", "shards", 10, 20))
	require.NoError(t, err)

	repo, err := toolstate.NewSQLite(filepath.Join(t.TempDir(), "tools.db"), c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	cfg := testConfig()
	cfg.Replenish.Mode = "gradual"
	cfg.Replenish.Interval = 500 * time.Millisecond
	cfg.Replenish.Percentage = 20

	provider, err := services.NewProvider(&services.ProviderConfig{
		Config:         cfg,
		Catalog:        c,
		ToolRepository: repo,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Equip(ctx, "slot-1", "pin"))
	require.NoError(t, repo.SetCurrency(ctx, "slot-1", "shards", 100))

	resting := &hero.State{AtBench: true}
	result, err := provider.Scheduler.Update(ctx, scheduler.Frame{Delta: time.Second, Hero: resting})
	require.NoError(t, err)
	require.NotNil(t, result)

	// One gradual step fills 20% of storage at 2 shards a unit
	data, err := repo.GetToolData(ctx, "slot-1", "pin")
	require.NoError(t, err)
	assert.Equal(t, 2, data.AmountLeft)

	amount, err := repo.GetCurrencyAmount(ctx, "slot-1", tools.CurrencyKind("shards"))
	require.NoError(t, err)
	assert.Equal(t, 96.0, amount)
}

func TestNewProvider_BadMode(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Replenish.Mode = "sometimes"

	_, err = services.NewProvider(&services.ProviderConfig{Config: cfg, Catalog: c})
	assert.Error(t, err)
}
