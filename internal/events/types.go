package events

import (
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
)

// EventType represents the type of tool event
type EventType string

// Event is the base interface for all events
type Event interface {
	GetType() EventType
	GetProfileID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	ProfileID string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType   { return e.Type }
func (e *BaseEvent) GetProfileID() string { return e.ProfileID }
func (e *BaseEvent) IsCancelled() bool    { return e.Cancelled }
func (e *BaseEvent) Cancel()              { e.Cancelled = true }

// ToolBindingsChangedEvent tells the HUD to redraw tool counters
type ToolBindingsChangedEvent struct {
	BaseEvent
}

// EquippedSetChangedEvent tells listeners the equipped tool set was touched
type EquippedSetChangedEvent struct {
	BaseEvent
	Force bool
}

// ToolsReplenishedEvent reports a committed replenish attempt
type ToolsReplenishedEvent struct {
	BaseEvent
	AttemptID      string
	Units          map[string]int
	CurrencyDebits map[tools.CurrencyKind]int
	ReserveDebits  map[string]int
}
