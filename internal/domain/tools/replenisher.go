package tools

// CostTolerance is how far below zero a balance may dip to absorb float rounding
const CostTolerance = -0.5

// UnitRequest asks a tool to refill one unit
type UnitRequest struct {
	// Commit is false for a probe
	Commit bool
	// Cost is the requested currency cost from UnitCost
	Cost float64
	// Available is the working balance of the tool's currency
	Available float64
	// Storage is the tool's current capacity
	Storage int
}

// UnitResult is the outcome of a single-unit refill
type UnitResult struct {
	Accepted    bool
	Cost        float64
	ReserveCost float64
}

// Replenisher refills one unit of a tool at a time
type Replenisher interface {
	ReplenishOne(req UnitRequest) UnitResult
	Tool() *Tool
}

// ReplenisherFor picks the replenish behavior for a tool
func ReplenisherFor(t *Tool, reserve *ReserveState) Replenisher {
	if t.IsLiquid() {
		return &LiquidTool{tool: t, reserve: reserve}
	}
	return &GenericTool{tool: t}
}

// GenericTool pays for each unit in currency
type GenericTool struct {
	tool *Tool
}

// Tool returns the definition
func (g *GenericTool) Tool() *Tool { return g.tool }

// ReplenishOne implements Replenisher
func (g *GenericTool) ReplenishOne(req UnitRequest) UnitResult {
	cost := req.Cost
	if g.tool.Usage == UsageCustom {
		cost = g.tool.CustomCost * g.tool.UsageMultiplier
	}
	if g.tool.Resource == CurrencyNone {
		return UnitResult{Accepted: true}
	}
	if req.Available-cost < CostTolerance {
		return UnitResult{}
	}
	return UnitResult{Accepted: true, Cost: cost}
}

// LiquidTool pays in currency and draws on a reserve pool.
// A full tank costs one refill; a partial fill draws its share.
type LiquidTool struct {
	tool    *Tool
	reserve *ReserveState
}

// Tool returns the definition
func (l *LiquidTool) Tool() *Tool { return l.tool }

// Reserve returns the pool state read at attempt start
func (l *LiquidTool) Reserve() *ReserveState { return l.reserve }

// ReplenishOne implements Replenisher
func (l *LiquidTool) ReplenishOne(req UnitRequest) UnitResult {
	res := (&GenericTool{tool: l.tool}).ReplenishOne(req)
	if !res.Accepted {
		return res
	}
	if l.reserve == nil {
		return UnitResult{}
	}
	if l.reserve.IsInfinite() || req.Storage <= 0 {
		return res
	}
	if l.reserve.Remaining() <= ReserveEpsilon && !l.reserve.UsedExtra {
		return UnitResult{}
	}
	res.ReserveCost = 1 / float64(req.Storage)
	return res
}
