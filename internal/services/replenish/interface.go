package replenish

//go:generate mockgen -destination=mock/mock.go -package=mockreplenish -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/tool-replenish/internal/events"
)

// Service refills equipped tools from a profile's currencies
type Service interface {
	// Attempt runs one replenish pass. A simulated attempt (Commit=false)
	// never writes; its Replenished flag matches what a commit would report.
	Attempt(ctx context.Context, input *AttemptInput) (*AttemptResult, error)

	// NeedsReplenish reports whether any equipped tool is below capacity
	NeedsReplenish(ctx context.Context, profileID string) (bool, error)
}

// Notifier receives the side effects of a committed attempt
type Notifier interface {
	NotifyBindingsChanged(ctx context.Context, profileID string) error
	NotifyEquippedSetChanged(ctx context.Context, profileID string, force bool) error
	NotifyReplenished(ctx context.Context, event *events.ToolsReplenishedEvent) error
}
