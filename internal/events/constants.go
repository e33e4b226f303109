package events

const (
	EventTypeToolBindingsChanged EventType = "tool_bindings_changed"
	EventTypeEquippedSetChanged  EventType = "equipped_set_changed"
	EventTypeToolsReplenished    EventType = "tools_replenished"
)
