package testutils

import (
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
)

// CreateTestTool creates an auto-replenished percentage tool
func CreateTestTool(name string, resource tools.CurrencyKind, storage int, baseCost float64) *tools.Tool {
	return &tools.Tool{
		Name:              name,
		Usage:             tools.UsagePercentage,
		Resource:          resource,
		BaseStorage:       storage,
		BaseReplenishCost: baseCost,
		UsageMultiplier:   1,
		AutoReplenished:   true,
		Category:          "red",
	}
}

// CreateTestLiquid creates an auto-replenished liquid drawing on pool.
// An empty pool uses the tool's own name.
func CreateTestLiquid(name, pool string, storage int) *tools.Tool {
	return &tools.Tool{
		Name:            name,
		Usage:           tools.UsageCustom,
		BaseStorage:     storage,
		UsageMultiplier: 1,
		AutoReplenished: true,
		Category:        "red",
		Liquid:          &tools.LiquidConfig{Pool: pool},
	}
}
