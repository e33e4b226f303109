package replenish

import (
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
)

// Method tags why an attempt runs; it changes filtering and UI feedback
type Method string

const (
	// MethodBench is a regular rest refill
	MethodBench Method = "bench"

	// MethodBenchSilent refills without cost popups
	MethodBenchSilent Method = "bench_silent"

	// MethodQuickCraft is the on-the-go refill; it skips free tools
	MethodQuickCraft Method = "quick_craft"
)

// IsSilent reports whether the method suppresses cost popups
func (m Method) IsSilent() bool {
	return m == MethodBenchSilent
}

// GradualPolicy caps how much of a tool one attempt may refill
type GradualPolicy struct {
	// Percentage of storage, clamped to [0, 100]
	Percentage float64
}

// AttemptInput is the context the scheduler passes per attempt
type AttemptInput struct {
	ProfileID string
	Commit    bool
	Method    Method
	Gradual   *GradualPolicy
}

// AttemptResult reports what an attempt did or would do
type AttemptResult struct {
	ID          string
	Replenished bool
	Rounds      int
	// Units added per tool; filled on commit
	Units          map[string]int
	CurrencyDebits map[tools.CurrencyKind]int
	ReserveDebits  map[string]int
	FallbackUsed   bool
}
