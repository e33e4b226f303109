package replenish

import (
	"context"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
	"github.com/KirkDiggler/tool-replenish/internal/events"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/uuid"
)

type service struct {
	repository    toolstate.Repository
	notifier      Notifier
	uuidGenerator uuid.Generator

	excluded         map[tools.Category]bool
	allowExcluded    bool
	fallbackCurrency tools.CurrencyKind
	fallbackFlatCost float64
}

// ServiceConfig holds configuration for the replenish service
type ServiceConfig struct {
	Repository    toolstate.Repository
	Notifier      Notifier
	UUIDGenerator uuid.Generator

	// ExcludedCategories are never auto refilled unless AllowExcludedCategories
	ExcludedCategories      []tools.Category
	AllowExcludedCategories bool

	// FallbackCurrency pays for a quick craft that refilled nothing
	FallbackCurrency tools.CurrencyKind
	FallbackFlatCost float64
}

// NewService creates a replenish service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("tool state repository is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	svc := &service{
		repository:       cfg.Repository,
		notifier:         cfg.Notifier,
		uuidGenerator:    cfg.UUIDGenerator,
		excluded:         make(map[tools.Category]bool, len(cfg.ExcludedCategories)),
		allowExcluded:    cfg.AllowExcludedCategories,
		fallbackCurrency: cfg.FallbackCurrency,
		fallbackFlatCost: cfg.FallbackFlatCost,
	}
	for _, category := range cfg.ExcludedCategories {
		svc.excluded[category] = true
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Attempt runs the replenish loop for a profile
func (s *service) Attempt(ctx context.Context, input *AttemptInput) (*AttemptResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	result := &AttemptResult{
		ID:             s.uuidGenerator.New(),
		Units:          make(map[string]int),
		CurrencyDebits: make(map[tools.CurrencyKind]int),
		ReserveDebits:  make(map[string]int),
	}

	if input.ProfileID == "" {
		return result, nil
	}

	equipped, err := s.repository.ListEquipped(ctx, input.ProfileID)
	if err != nil {
		return result, apperr.Wrap(err, "failed to list equipped tools")
	}
	if equipped == nil {
		return result, nil
	}

	a, err := s.prepare(ctx, input, equipped)
	if err != nil {
		return result, err
	}

	a.run()
	result.FallbackUsed = a.applyFallback(s.fallbackCurrency, s.fallbackFlatCost)
	result.Rounds = a.rounds
	result.Replenished = a.replenished

	if !input.Commit {
		return result, nil
	}

	if err := s.commit(ctx, input, a, result); err != nil {
		result.Replenished = false
		return result, err
	}

	log.Printf("Replenish: attempt %s for profile %s committed (replenished=%t rounds=%d units=%v)",
		result.ID, input.ProfileID, result.Replenished, result.Rounds, result.Units)

	return result, nil
}

// prepare snapshots balances and builds the candidate list
func (s *service) prepare(ctx context.Context, input *AttemptInput, equipped []*tools.Tool) (*attempt, error) {
	a := newAttempt(input)

	kinds, err := s.repository.CurrencyKinds(ctx, input.ProfileID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list currencies")
	}
	if s.fallbackCurrency != tools.CurrencyNone && !containsKind(kinds, s.fallbackCurrency) {
		kinds = append(kinds, s.fallbackCurrency)
	}
	a.kinds = kinds

	for _, kind := range kinds {
		amount, err := s.repository.GetCurrencyAmount(ctx, input.ProfileID, kind)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to read currency %s", kind)
		}
		a.starting[kind] = amount
		a.ending[kind] = amount
	}

	seen := make(map[string]bool, len(equipped))
	for _, t := range equipped {
		if !s.eligible(t) || seen[t.Name] {
			continue
		}
		seen[t.Name] = true

		c, err := s.loadCandidate(ctx, input, a, t)
		if err != nil {
			return nil, err
		}
		a.candidates = append(a.candidates, c)
	}

	return a, nil
}

func (s *service) eligible(t *tools.Tool) bool {
	if t == nil || t.Name == "" || !t.AutoReplenished {
		return false
	}
	if s.excluded[t.Category] && !s.allowExcluded {
		return false
	}
	return true
}

func (s *service) loadCandidate(ctx context.Context, input *AttemptInput, a *attempt, t *tools.Tool) (*candidate, error) {
	data, err := s.repository.GetToolData(ctx, input.ProfileID, t.Name)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to read tool %s", t.Name)
	}
	storage, err := s.repository.GetStorageCapacity(ctx, input.ProfileID, t)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to read capacity of %s", t.Name)
	}

	var reserve *tools.ReserveState
	if t.IsLiquid() {
		pool := t.ReservePool()
		if cached, ok := a.reserves[pool]; ok {
			reserve = cached
		} else {
			reserve, err = s.repository.GetReserveState(ctx, input.ProfileID, pool)
			if err != nil && !apperr.IsNotFound(err) {
				return nil, apperr.Wrapf(err, "failed to read reserve %s", pool)
			}
			a.reserves[pool] = reserve
		}
	}

	c := &candidate{
		tool:    t,
		rep:     tools.ReplenisherFor(t, reserve),
		storage: storage,
		start:   data.AmountLeft,
		amount:  data.AmountLeft,
	}
	if input.Gradual != nil {
		c.maxDelta = gradualCap(storage, input.Gradual.Percentage)
	}
	return c, nil
}

// commit writes the attempt back. Nothing is written before the loop has
// decided every outcome. Currency and reserves are paid before any tool is
// refilled.
func (s *service) commit(ctx context.Context, input *AttemptInput, a *attempt, result *AttemptResult) error {
	profileID := input.ProfileID
	notifyUI := !input.Method.IsSilent()

	for _, kind := range a.kinds {
		debit := math.Round(a.starting[kind] - a.ending[kind])
		if debit <= 0 {
			continue
		}
		if err := s.repository.TakeCurrency(ctx, profileID, int(debit), kind, notifyUI); err != nil {
			return apperr.Wrapf(err, "failed to take currency %s", kind)
		}
		result.CurrencyDebits[kind] = int(debit)
	}

	for _, pool := range a.pools {
		if err := s.settleReserve(ctx, profileID, pool, a, notifyUI, result); err != nil {
			return err
		}
	}

	for _, c := range a.candidates {
		if c.amount == c.start {
			continue
		}
		if err := s.repository.SetToolData(ctx, profileID, c.tool.Name, &tools.ToolData{AmountLeft: c.amount}); err != nil {
			return apperr.Wrapf(err, "failed to store tool %s", c.tool.Name)
		}
		result.Units[c.tool.Name] = c.amount - c.start
	}

	if err := s.notifier.NotifyBindingsChanged(ctx, profileID); err != nil {
		return apperr.Wrap(err, "failed to notify tool bindings")
	}
	if err := s.notifier.NotifyEquippedSetChanged(ctx, profileID, true); err != nil {
		return apperr.Wrap(err, "failed to notify equipped set")
	}

	if !a.replenished {
		return nil
	}
	return s.notifier.NotifyReplenished(ctx, &events.ToolsReplenishedEvent{
		BaseEvent:      events.BaseEvent{ProfileID: profileID},
		AttemptID:      result.ID,
		Units:          result.Units,
		CurrencyDebits: result.CurrencyDebits,
		ReserveDebits:  result.ReserveDebits,
	})
}

// settleReserve debits the whole refills a pool's draw completes and stores
// the share left over for the next attempt. A pool drawn at no cost is an
// infinite one and only gets its UI marker.
func (s *service) settleReserve(ctx context.Context, profileID, pool string, a *attempt, notifyUI bool, result *AttemptResult) error {
	cost := a.reserveCost[pool]
	if cost == 0 {
		if !notifyUI {
			return nil
		}
		if err := s.repository.MarkInfiniteReserveShown(ctx, profileID, pool); err != nil {
			return apperr.Wrapf(err, "failed to mark reserve %s", pool)
		}
		return nil
	}

	reserve := a.reserves[pool]
	debit, carry := reserve.Settle(cost)
	if debit > 0 {
		if err := s.repository.TakeReserve(ctx, profileID, pool, debit, notifyUI); err != nil {
			return apperr.Wrapf(err, "failed to take reserve %s", pool)
		}
		result.ReserveDebits[pool] = debit
	}
	if carry != reserve.Spent {
		if err := s.repository.SetReserveSpent(ctx, profileID, pool, carry); err != nil {
			return apperr.Wrapf(err, "failed to store reserve %s", pool)
		}
	}
	return nil
}

// NeedsReplenish checks every equipped tool against its capacity
func (s *service) NeedsReplenish(ctx context.Context, profileID string) (bool, error) {
	if profileID == "" {
		return false, nil
	}

	equipped, err := s.repository.ListEquipped(ctx, profileID)
	if err != nil {
		return false, apperr.Wrap(err, "failed to list equipped tools")
	}

	below := make([]bool, len(equipped))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range equipped {
		if t == nil {
			continue
		}
		i, t := i, t
		g.Go(func() error {
			data, err := s.repository.GetToolData(gctx, profileID, t.Name)
			if err != nil {
				return apperr.Wrapf(err, "failed to read tool %s", t.Name)
			}
			storage, err := s.repository.GetStorageCapacity(gctx, profileID, t)
			if err != nil {
				return apperr.Wrapf(err, "failed to read capacity of %s", t.Name)
			}
			below[i] = data.AmountLeft < storage
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	for _, b := range below {
		if b {
			return true, nil
		}
	}
	return false, nil
}

func containsKind(kinds []tools.CurrencyKind, kind tools.CurrencyKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
