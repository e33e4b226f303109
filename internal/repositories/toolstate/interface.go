package toolstate

//go:generate mockgen -destination=mock/mock.go -package=mocktoolstate -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
)

// Repository is the per-profile tool and currency store
type Repository interface {
	// ListEquipped returns the equipped tools in slot order.
	// Unknown tool names come back as nil placeholders; a profile with
	// nothing equipped returns a nil slice.
	ListEquipped(ctx context.Context, profileID string) ([]*tools.Tool, error)

	// Equip replaces the equipped tool list
	Equip(ctx context.Context, profileID string, names ...string) error

	// GetToolData returns a tool's charge; tools never refilled start empty
	GetToolData(ctx context.Context, profileID, name string) (*tools.ToolData, error)

	// SetToolData stores a tool's charge
	SetToolData(ctx context.Context, profileID, name string, data *tools.ToolData) error

	// GetStorageCapacity is the tool's base storage plus profile upgrades
	GetStorageCapacity(ctx context.Context, profileID string, tool *tools.Tool) (int, error)

	// SetCapacityBonus stores a profile's storage upgrade for a tool
	SetCapacityBonus(ctx context.Context, profileID, name string, bonus int) error

	// CurrencyKinds lists every currency the profile can hold
	CurrencyKinds(ctx context.Context, profileID string) ([]tools.CurrencyKind, error)

	GetCurrencyAmount(ctx context.Context, profileID string, kind tools.CurrencyKind) (float64, error)
	SetCurrency(ctx context.Context, profileID string, kind tools.CurrencyKind, amount int) error

	// TakeCurrency debits a balance, clamping at zero
	TakeCurrency(ctx context.Context, profileID string, amount int, kind tools.CurrencyKind, notifyUI bool) error

	// GetReserveState returns a not found error for unknown pools
	GetReserveState(ctx context.Context, profileID, pool string) (*tools.ReserveState, error)
	SetReserveState(ctx context.Context, profileID, pool string, state *tools.ReserveState) error
	TakeReserve(ctx context.Context, profileID, pool string, amount int, notifyUI bool) error

	// SetReserveSpent stores the share of a refill drawn but not yet debited
	SetReserveSpent(ctx context.Context, profileID, pool string, spent float64) error
	MarkInfiniteReserveShown(ctx context.Context, profileID, pool string) error

	// LoadProfile returns a full snapshot for reporting
	LoadProfile(ctx context.Context, profileID string) (*Profile, error)
}

// Profile is a point-in-time view of a profile's tool state
type Profile struct {
	ID         string                         `json:"id"`
	Equipped   []string                       `json:"equipped"`
	Tools      map[string]*tools.ToolData     `json:"tools"`
	Capacity   map[string]int                 `json:"capacity"`
	Currencies map[tools.CurrencyKind]int     `json:"currencies"`
	Reserves   map[string]*tools.ReserveState `json:"reserves"`
}

// HUDMessage is a cost popup raised when a debit asks for UI feedback
type HUDMessage struct {
	Kind   string `json:"kind"` // "currency", "reserve" or "infinite"
	Key    string `json:"key"`
	Amount int    `json:"amount"`
}

const (
	HUDKindCurrency = "currency"
	HUDKindReserve  = "reserve"
	HUDKindInfinite = "infinite"
)
