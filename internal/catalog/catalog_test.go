package catalog_test

import (
	"testing"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load("testdata/catalog.yaml")
	require.NoError(t, err)

	all := c.Tools()
	require.Len(t, all, 5)
	assert.Equal(t, "straight-pin", all[0].Name)
	assert.Equal(t, "lifeblood-flask", all[4].Name)

	pin := c.MustGet("straight-pin")
	assert.Equal(t, tools.UsagePercentage, pin.Usage)
	assert.Equal(t, tools.CurrencyKind("shards"), pin.Resource)
	assert.Equal(t, 10, pin.BaseStorage)
	assert.Equal(t, 1.0, pin.UsageMultiplier, "multiplier defaults to 1")
	assert.True(t, pin.AutoReplenished)

	sting := c.MustGet("sting-shard")
	assert.Equal(t, 1.5, sting.UsageMultiplier)

	flask := c.MustGet("plasmium-flask")
	require.True(t, flask.IsLiquid())
	assert.Equal(t, "plasmium", flask.ReservePool())
	assert.Equal(t, tools.Category("blue"), flask.Category)

	lifeblood := c.MustGet("lifeblood-flask")
	assert.Equal(t, "lifeblood-flask", lifeblood.ReservePool())

	assert.Equal(t, []tools.CurrencyKind{"shards", "beads"}, c.Currencies())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code apperr.Code
	}{
		{
			name: "unknown usage",
			yaml: "tools:\n  - name: pin\n    usage: weird\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "missing name",
			yaml: "tools:\n  - usage: custom\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "duplicate",
			yaml: "tools:\n  - name: pin\n    usage: custom\n  - name: pin\n    usage: custom\n",
			code: apperr.CodeAlreadyExists,
		},
		{
			name: "negative storage",
			yaml: "tools:\n  - name: pin\n    usage: custom\n    base_storage: -1\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "unknown field",
			yaml: "tools:\n  - name: pin\n    usage: custom\n    storage: 4\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "storage is not a number",
			yaml: "tools:\n  - name: pin\n    usage: custom\n    base_storage: lots\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "fractional storage",
			yaml: "tools:\n  - name: pin\n    usage: custom\n    base_storage: 2.5\n",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "empty document",
			yaml: "",
			code: apperr.CodeInvalidArgument,
		},
		{
			name: "malformed yaml",
			yaml: "tools: [",
			code: apperr.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.code, apperr.GetCode(err))
		})
	}
}

func TestParse_ValidatesNumbers(t *testing.T) {
	doc := `tools:
  - name: pin
    usage: percentage
    resource: shards
    base_storage: 8
    base_replenish_cost: 2.25
    usage_multiplier: 0.5
    auto_replenished: true
  - name: vat
    usage: custom
    base_storage: 100
    liquid:
      pool: oil
`
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)

	pin := c.MustGet("pin")
	assert.Equal(t, 8, pin.BaseStorage)
	assert.Equal(t, 2.25, pin.BaseReplenishCost)
	assert.Equal(t, 0.5, pin.UsageMultiplier)
	assert.Equal(t, "oil", c.MustGet("vat").ReservePool())
}

func TestNew_CopiesDefinitions(t *testing.T) {
	def := &tools.Tool{Name: "pin", Usage: tools.UsageCustom, Liquid: &tools.LiquidConfig{Pool: "vat"}}
	c, err := catalog.New(def)
	require.NoError(t, err)

	def.Name = "changed"
	def.Liquid.Pool = "other"

	got, ok := c.Get("pin")
	require.True(t, ok)
	assert.Equal(t, "vat", got.ReservePool())

	_, ok = c.Get("changed")
	assert.False(t, ok)
	assert.Panics(t, func() { c.MustGet("changed") })
}
