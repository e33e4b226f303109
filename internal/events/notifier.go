package events

import (
	"context"
)

// Notifier publishes tool notifications on a Bus
type Notifier struct {
	bus *Bus
}

// NewNotifier creates a Notifier for the given bus
func NewNotifier(bus *Bus) *Notifier {
	if bus == nil {
		panic("event bus is required")
	}
	return &Notifier{bus: bus}
}

// NotifyBindingsChanged emits EventTypeToolBindingsChanged
func (n *Notifier) NotifyBindingsChanged(_ context.Context, profileID string) error {
	return n.bus.Emit(&ToolBindingsChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeToolBindingsChanged, ProfileID: profileID},
	})
}

// NotifyEquippedSetChanged emits EventTypeEquippedSetChanged
func (n *Notifier) NotifyEquippedSetChanged(_ context.Context, profileID string, force bool) error {
	return n.bus.Emit(&EquippedSetChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeEquippedSetChanged, ProfileID: profileID},
		Force:     force,
	})
}

// NotifyReplenished emits EventTypeToolsReplenished
func (n *Notifier) NotifyReplenished(_ context.Context, event *ToolsReplenishedEvent) error {
	event.Type = EventTypeToolsReplenished
	return n.bus.Emit(event)
}
