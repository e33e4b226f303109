package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/tool-replenish/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe out of order
	bus.Subscribe(events.EventTypeToolBindingsChanged, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeToolBindingsChanged, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeToolBindingsChanged, &testListener{id: "medium", priority: 200, handler: record("medium")})

	err := bus.Emit(&events.ToolBindingsChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeToolBindingsChanged},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	bus.Subscribe(events.EventTypeEquippedSetChanged, &testListener{
		id:       "first",
		priority: 100,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeEquippedSetChanged, &testListener{
		id:       "second",
		priority: 200,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := &events.EquippedSetChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeEquippedSetChanged},
		Force:     true,
	}
	require.NoError(t, bus.Emit(event))

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeToolsReplenished, &testListener{
		id:       "broken",
		priority: 1,
		handler:  func(events.Event) error { return errors.New("hud offline") },
	})

	err := bus.Emit(&events.ToolsReplenishedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeToolsReplenished},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeToolBindingsChanged, &testListener{id: "a", priority: 1, handler: noop})
	bus.Subscribe(events.EventTypeToolBindingsChanged, &testListener{id: "b", priority: 2, handler: noop})
	require.Equal(t, 2, bus.ListenerCount(events.EventTypeToolBindingsChanged))

	bus.Unsubscribe(events.EventTypeToolBindingsChanged, "a")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeToolBindingsChanged))

	bus.Unsubscribe(events.EventTypeToolBindingsChanged, "missing")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeToolBindingsChanged))

	bus.Clear()
	assert.Zero(t, bus.ListenerCount(events.EventTypeToolBindingsChanged))
}

func TestNotifier(t *testing.T) {
	bus := events.NewBus()
	notifier := events.NewNotifier(bus)

	var received []events.Event
	capture := &events.ListenerFunc{
		ListenerID: "capture",
		Fn: func(e events.Event) error {
			received = append(received, e)
			return nil
		},
	}
	bus.Subscribe(events.EventTypeToolBindingsChanged, capture)
	bus.Subscribe(events.EventTypeEquippedSetChanged, capture)
	bus.Subscribe(events.EventTypeToolsReplenished, capture)

	ctx := context.Background()
	require.NoError(t, notifier.NotifyBindingsChanged(ctx, "p1"))
	require.NoError(t, notifier.NotifyEquippedSetChanged(ctx, "p1", true))
	require.NoError(t, notifier.NotifyReplenished(ctx, &events.ToolsReplenishedEvent{
		BaseEvent: events.BaseEvent{ProfileID: "p1"},
		AttemptID: "attempt-1",
		Units:     map[string]int{"pin": 3},
	}))

	require.Len(t, received, 3)
	assert.Equal(t, events.EventTypeToolBindingsChanged, received[0].GetType())
	assert.Equal(t, "p1", received[0].GetProfileID())

	equipped, ok := received[1].(*events.EquippedSetChangedEvent)
	require.True(t, ok)
	assert.True(t, equipped.Force)

	replenished, ok := received[2].(*events.ToolsReplenishedEvent)
	require.True(t, ok)
	assert.Equal(t, events.EventTypeToolsReplenished, replenished.GetType())
	assert.Equal(t, 3, replenished.Units["pin"])
}

func TestNewNotifier_RequiresBus(t *testing.T) {
	assert.Panics(t, func() { events.NewNotifier(nil) })
}

type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
