//go:build integration

package toolstate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, nil)
	ctx := context.Background()

	c, err := catalog.Load("../../catalog/testdata/catalog.yaml")
	require.NoError(t, err)
	repo := toolstate.NewRedis(client, c)

	require.NoError(t, repo.Equip(ctx, "p1", "straight-pin", "plasmium-flask"))
	require.NoError(t, repo.SetToolData(ctx, "p1", "straight-pin", &tools.ToolData{AmountLeft: 4}))
	require.NoError(t, repo.SetCapacityBonus(ctx, "p1", "straight-pin", 2))
	require.NoError(t, repo.SetCurrency(ctx, "p1", "shards", 5))
	require.NoError(t, repo.SetReserveState(ctx, "p1", "plasmium", &tools.ReserveState{RefillsLeft: 2, RefillsMax: 2}))

	equipped, err := repo.ListEquipped(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, equipped, 2)

	capacity, err := repo.GetStorageCapacity(ctx, "p1", equipped[0])
	require.NoError(t, err)
	assert.Equal(t, 12, capacity)

	require.NoError(t, repo.TakeCurrency(ctx, "p1", 8, "shards", true))
	amount, err := repo.GetCurrencyAmount(ctx, "p1", "shards")
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount, "debits clamp at zero")

	require.NoError(t, repo.TakeReserve(ctx, "p1", "plasmium", 1, false))

	profile, err := repo.LoadProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"straight-pin", "plasmium-flask"}, profile.Equipped)
	assert.Equal(t, 4, profile.Tools["straight-pin"].AmountLeft)
	assert.Equal(t, 1, profile.Reserves["plasmium"].RefillsLeft)
}
