package tools

import (
	"fmt"
	"math"
)

// Usage describes how a tool's replenish cost is derived
type Usage string

const (
	// UsagePercentage charges a share of BaseReplenishCost per unit of storage
	UsagePercentage Usage = "percentage"

	// UsageOneForOne charges one currency per unit
	UsageOneForOne Usage = "one_for_one"

	// UsageCustom leaves the cost to the tool's own replenish logic
	UsageCustom Usage = "custom"
)

// Valid reports whether u is a known usage kind
func (u Usage) Valid() bool {
	switch u {
	case UsagePercentage, UsageOneForOne, UsageCustom:
		return true
	}
	return false
}

// CurrencyKind identifies a currency pool a tool draws from
type CurrencyKind string

// CurrencyNone marks tools that are replenished for free
const CurrencyNone CurrencyKind = ""

// Category is a filterable tool class (e.g. "red", "blue")
type Category string

// Tool is the static definition of a replenishable tool
type Tool struct {
	Name              string       `json:"name" yaml:"name"`
	Usage             Usage        `json:"usage" yaml:"usage"`
	Resource          CurrencyKind `json:"resource" yaml:"resource"`
	BaseStorage       int          `json:"base_storage" yaml:"base_storage"`
	BaseReplenishCost float64      `json:"base_replenish_cost" yaml:"base_replenish_cost"`
	UsageMultiplier   float64      `json:"usage_multiplier" yaml:"usage_multiplier"`
	// CustomCost is what a UsageCustom tool charges per unit
	CustomCost      float64       `json:"custom_cost" yaml:"custom_cost"`
	AutoReplenished bool          `json:"auto_replenished" yaml:"auto_replenished"`
	Category        Category      `json:"category" yaml:"category"`
	Liquid          *LiquidConfig `json:"liquid,omitempty" yaml:"liquid,omitempty"`
}

// LiquidConfig marks a tool as a liquid drawing on a reserve pool
type LiquidConfig struct {
	// Pool names the reserve; tools sharing a pool contend for it.
	// Empty means the tool's own name.
	Pool string `json:"pool,omitempty" yaml:"pool,omitempty"`
}

// IsLiquid reports whether the tool draws on a reserve pool
func (t *Tool) IsLiquid() bool {
	return t != nil && t.Liquid != nil
}

// ReservePool returns the reserve pool key for a liquid tool
func (t *Tool) ReservePool() string {
	if !t.IsLiquid() {
		return ""
	}
	if t.Liquid.Pool != "" {
		return t.Liquid.Pool
	}
	return t.Name
}

// UnitCost is the currency cost of refilling one unit of the tool.
// An unknown usage is a contract violation and panics.
func UnitCost(t *Tool, storage int) float64 {
	var cost float64
	switch t.Usage {
	case UsagePercentage:
		if storage <= 0 {
			return 0
		}
		cost = 1 / float64(storage) * t.BaseReplenishCost
	case UsageOneForOne:
		cost = 1
	case UsageCustom:
		cost = 0
	default:
		panic(fmt.Sprintf("tools: unknown usage %q for tool %s", t.Usage, t.Name))
	}
	return cost * t.UsageMultiplier
}

// ToolData is the per-profile mutable state of a tool
type ToolData struct {
	AmountLeft int `json:"amount_left"`
}

// ReserveState tracks a liquid reserve pool
type ReserveState struct {
	RefillsLeft   int  `json:"refills_left"`
	RefillsMax    int  `json:"refills_max"`
	UsedExtra     bool `json:"used_extra"`
	InfiniteShown bool `json:"infinite_shown"`
	// Spent is the share of a refill drawn but not yet debited, in [0, 1)
	Spent float64 `json:"spent,omitempty"`
}

// ReserveEpsilon keeps summed 1/storage shares from missing a whole refill
const ReserveEpsilon = 1e-9

// Remaining is what the pool can still supply, counting the carried share
func (r *ReserveState) Remaining() float64 {
	return float64(r.RefillsLeft) - r.Spent
}

// Settle adds cost to the carried share and splits off the whole refills it
// completes. It returns the refills to debit and the share left to carry.
func (r *ReserveState) Settle(cost float64) (int, float64) {
	carried := r.Spent + cost
	whole := math.Floor(carried + ReserveEpsilon)
	carry := carried - whole
	if carry < ReserveEpsilon {
		carry = 0
	}
	return int(whole), carry
}

// IsRefillsFull reports whether the pool is at its maximum
func (r *ReserveState) IsRefillsFull() bool {
	return r.RefillsLeft >= r.RefillsMax
}

// IsInfinite reports whether the pool never runs dry
func (r *ReserveState) IsInfinite() bool {
	return r.RefillsMax == 0
}

// Take removes amount refills, never going below zero
func (r *ReserveState) Take(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > r.RefillsLeft {
		amount = r.RefillsLeft
	}
	r.RefillsLeft -= amount
	return amount
}
