package toolstate

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
)

type profileState struct {
	equipped   []string
	tools      map[string]tools.ToolData
	capacity   map[string]int
	currencies map[tools.CurrencyKind]int
	reserves   map[string]tools.ReserveState
	hud        []HUDMessage
}

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryRepository keeps tool state in process memory.
// Useful for testing and development
type InMemoryRepository struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	profiles map[string]*profileState
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(c *catalog.Catalog) *InMemoryRepository {
	if c == nil {
		panic("catalog is required")
	}
	return &InMemoryRepository{
		catalog:  c,
		profiles: make(map[string]*profileState),
	}
}

// profile returns the state for id, creating it. Caller holds the write lock.
func (r *InMemoryRepository) profile(id string) *profileState {
	p, ok := r.profiles[id]
	if !ok {
		p = &profileState{
			tools:      make(map[string]tools.ToolData),
			capacity:   make(map[string]int),
			currencies: make(map[tools.CurrencyKind]int),
			reserves:   make(map[string]tools.ReserveState),
		}
		r.profiles[id] = p
	}
	return p
}

func (r *InMemoryRepository) ListEquipped(_ context.Context, profileID string) ([]*tools.Tool, error) {
	if profileID == "" {
		return nil, apperr.InvalidArgument("profile ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok || p.equipped == nil {
		return nil, nil
	}

	result := make([]*tools.Tool, len(p.equipped))
	for i, name := range p.equipped {
		if t, found := r.catalog.Get(name); found {
			result[i] = t
		}
	}
	return result, nil
}

func (r *InMemoryRepository) Equip(_ context.Context, profileID string, names ...string) error {
	if profileID == "" {
		return apperr.InvalidArgument("profile ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profile(profileID)
	p.equipped = append([]string{}, names...)
	return nil
}

func (r *InMemoryRepository) GetToolData(_ context.Context, profileID, name string) (*tools.ToolData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return &tools.ToolData{}, nil
	}
	data := p.tools[name]
	return &data, nil
}

func (r *InMemoryRepository) SetToolData(_ context.Context, profileID, name string, data *tools.ToolData) error {
	if data == nil {
		return apperr.InvalidArgument("tool data cannot be nil")
	}
	if data.AmountLeft < 0 {
		return apperr.InvalidArgumentf("tool %s amount cannot be negative", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile(profileID).tools[name] = *data
	return nil
}

func (r *InMemoryRepository) GetStorageCapacity(_ context.Context, profileID string, tool *tools.Tool) (int, error) {
	if tool == nil {
		return 0, apperr.InvalidArgument("tool cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bonus := 0
	if p, ok := r.profiles[profileID]; ok {
		bonus = p.capacity[tool.Name]
	}
	return tool.BaseStorage + bonus, nil
}

func (r *InMemoryRepository) SetCapacityBonus(_ context.Context, profileID, name string, bonus int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile(profileID).capacity[name] = bonus
	return nil
}

func (r *InMemoryRepository) CurrencyKinds(_ context.Context, profileID string) ([]tools.CurrencyKind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var held []string
	if p, ok := r.profiles[profileID]; ok {
		for kind := range p.currencies {
			held = append(held, string(kind))
		}
	}
	return mergeKinds(r.catalog.Currencies(), held), nil
}

func (r *InMemoryRepository) GetCurrencyAmount(_ context.Context, profileID string, kind tools.CurrencyKind) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return 0, nil
	}
	return float64(p.currencies[kind]), nil
}

func (r *InMemoryRepository) SetCurrency(_ context.Context, profileID string, kind tools.CurrencyKind, amount int) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("currency %s cannot be negative", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile(profileID).currencies[kind] = amount
	return nil
}

func (r *InMemoryRepository) TakeCurrency(_ context.Context, profileID string, amount int, kind tools.CurrencyKind, notifyUI bool) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("cannot take negative %s", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profile(profileID)
	left := p.currencies[kind] - amount
	if left < 0 {
		left = 0
	}
	p.currencies[kind] = left

	if notifyUI {
		p.hud = append(p.hud, HUDMessage{Kind: HUDKindCurrency, Key: string(kind), Amount: amount})
	}
	return nil
}

func (r *InMemoryRepository) GetReserveState(_ context.Context, profileID, pool string) (*tools.ReserveState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.profiles[profileID]; ok {
		if state, found := p.reserves[pool]; found {
			return &state, nil
		}
	}
	return nil, apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
}

func (r *InMemoryRepository) SetReserveState(_ context.Context, profileID, pool string, state *tools.ReserveState) error {
	if state == nil {
		return apperr.InvalidArgument("reserve state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile(profileID).reserves[pool] = *state
	return nil
}

func (r *InMemoryRepository) TakeReserve(_ context.Context, profileID, pool string, amount int, notifyUI bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profile(profileID)
	state, ok := p.reserves[pool]
	if !ok {
		return apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	state.Take(amount)
	p.reserves[pool] = state

	if notifyUI {
		p.hud = append(p.hud, HUDMessage{Kind: HUDKindReserve, Key: pool, Amount: amount})
	}
	return nil
}

func (r *InMemoryRepository) SetReserveSpent(_ context.Context, profileID, pool string, spent float64) error {
	if spent < 0 || spent >= 1 {
		return apperr.InvalidArgumentf("reserve %s spent share %.3f out of range", pool, spent)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profile(profileID)
	state, ok := p.reserves[pool]
	if !ok {
		return apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	state.Spent = spent
	p.reserves[pool] = state
	return nil
}

func (r *InMemoryRepository) MarkInfiniteReserveShown(_ context.Context, profileID, pool string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.profile(profileID)
	state, ok := p.reserves[pool]
	if !ok {
		return apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	state.InfiniteShown = true
	p.reserves[pool] = state
	p.hud = append(p.hud, HUDMessage{Kind: HUDKindInfinite, Key: pool})
	return nil
}

func (r *InMemoryRepository) LoadProfile(_ context.Context, profileID string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return nil, apperr.NotFoundf("profile %s not found", profileID).WithMeta("profile_id", profileID)
	}

	out := &Profile{
		ID:         profileID,
		Equipped:   append([]string{}, p.equipped...),
		Tools:      make(map[string]*tools.ToolData, len(p.tools)),
		Capacity:   make(map[string]int, len(p.capacity)),
		Currencies: make(map[tools.CurrencyKind]int, len(p.currencies)),
		Reserves:   make(map[string]*tools.ReserveState, len(p.reserves)),
	}
	for name, data := range p.tools {
		data := data
		out.Tools[name] = &data
	}
	for name, bonus := range p.capacity {
		out.Capacity[name] = bonus
	}
	for kind, amount := range p.currencies {
		out.Currencies[kind] = amount
	}
	for pool, state := range p.reserves {
		state := state
		out.Reserves[pool] = &state
	}
	return out, nil
}

// HUDMessages returns the cost popups raised for a profile
func (r *InMemoryRepository) HUDMessages(profileID string) []HUDMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return nil
	}
	return append([]HUDMessage(nil), p.hud...)
}

// mergeKinds keeps catalog order and appends held-only kinds sorted
func mergeKinds(known []tools.CurrencyKind, held []string) []tools.CurrencyKind {
	seen := make(map[tools.CurrencyKind]bool, len(known))
	out := make([]tools.CurrencyKind, 0, len(known)+len(held))
	for _, kind := range known {
		seen[kind] = true
		out = append(out, kind)
	}

	sort.Strings(held)
	for _, h := range held {
		kind := tools.CurrencyKind(h)
		if kind == tools.CurrencyNone || seen[kind] {
			continue
		}
		seen[kind] = true
		out = append(out, kind)
	}
	return out
}
