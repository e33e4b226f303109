package replenish

import (
	"math"

	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
)

// candidate is one tool taking part in an attempt
type candidate struct {
	tool    *tools.Tool
	rep     tools.Replenisher
	storage int
	start   int
	amount  int
	// maxDelta is the gradual cap, 0 when uncapped
	maxDelta int
}

func (c *candidate) capped() bool {
	return c.maxDelta > 0 && c.amount-c.start >= c.maxDelta
}

// attempt is the scratch state of one Attempt call. It is built fresh per
// call and only ever touches its own copies of balances and amounts.
type attempt struct {
	commit bool
	method Method

	kinds    []tools.CurrencyKind
	starting map[tools.CurrencyKind]float64
	ending   map[tools.CurrencyKind]float64

	reserves    map[string]*tools.ReserveState
	reserveCost map[string]float64
	// pools in the order they were first charged
	pools []string

	candidates []*candidate

	replenished bool
	attempted   bool
	rounds      int
}

func newAttempt(input *AttemptInput) *attempt {
	return &attempt{
		commit:      input.Commit,
		method:      input.Method,
		starting:    make(map[tools.CurrencyKind]float64),
		ending:      make(map[tools.CurrencyKind]float64),
		reserves:    make(map[string]*tools.ReserveState),
		reserveCost: make(map[string]float64),
	}
}

// gradualCap is the most one attempt may add to a tool of the given storage
func gradualCap(storage int, percentage float64) int {
	pct := math.Max(0, math.Min(100, percentage))
	return int(math.Max(1, math.Round(float64(storage)*pct/100)))
}

// run repeats rounds until one adds nothing. Every productive round raises
// some amount toward its storage, so the loop is bounded by total capacity.
func (a *attempt) run() {
	for {
		a.rounds++
		progressed := false
		for _, c := range a.candidates {
			if a.step(c) {
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// step tries to add one unit to c and reports whether another round is needed
func (a *attempt) step(c *candidate) bool {
	t := c.tool

	if a.method == MethodQuickCraft && t.Resource == tools.CurrencyNone {
		return false
	}
	if t.Usage == tools.UsageOneForOne {
		return false
	}
	if c.amount >= c.storage {
		return false
	}
	if c.capped() {
		return false
	}

	req := tools.UnitRequest{
		Cost:      tools.UnitCost(t, c.storage),
		Available: a.ending[t.Resource],
		Storage:   c.storage,
	}
	res := c.rep.ReplenishOne(req)
	if !res.Accepted {
		return false
	}
	a.attempted = true

	if a.commit {
		if a.ending[t.Resource]-res.Cost < tools.CostTolerance {
			return false
		}
		req.Commit = true
		res = c.rep.ReplenishOne(req)
		if !res.Accepted {
			return false
		}
	}

	if t.IsLiquid() && !a.chargeReserve(t.ReservePool(), res.ReserveCost) {
		return false
	}

	a.replenished = true
	if !a.commit {
		return false
	}

	if t.Resource != tools.CurrencyNone {
		a.ending[t.Resource] = math.Max(0, a.ending[t.Resource]-res.Cost)
	}
	c.amount++
	return c.amount < c.storage
}

// chargeReserve adds cost to the pool's running total unless that, on top
// of the share carried from earlier attempts, would exceed its refills and
// the pool may not run into extra.
func (a *attempt) chargeReserve(pool string, cost float64) bool {
	reserve := a.reserves[pool]
	if reserve == nil {
		return false
	}

	total := a.reserveCost[pool] + cost
	if reserve.Spent+total > float64(reserve.RefillsLeft)+tools.ReserveEpsilon && !reserve.UsedExtra {
		return false
	}

	if _, seen := a.reserveCost[pool]; !seen {
		a.pools = append(a.pools, pool)
	}
	a.reserveCost[pool] = total
	return true
}

// applyFallback treats a quick craft with nothing to refill as paid for by
// the fallback currency. With a step attempted the balance is spent out,
// otherwise the flat cost is taken.
func (a *attempt) applyFallback(kind tools.CurrencyKind, flatCost float64) bool {
	if a.replenished || a.method != MethodQuickCraft || kind == tools.CurrencyNone {
		return false
	}
	if a.ending[kind] <= 0 {
		return false
	}

	a.replenished = true
	if a.attempted {
		a.ending[kind] = 0
	} else {
		a.ending[kind] = math.Max(0, a.ending[kind]-flatCost)
	}
	return true
}
