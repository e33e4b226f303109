package services

import (
	"log"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/config"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	"github.com/KirkDiggler/tool-replenish/internal/events"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/services/replenish"
	"github.com/KirkDiggler/tool-replenish/internal/services/scheduler"
)

// Provider holds all service instances
type Provider struct {
	Repository       toolstate.Repository
	EventBus         *events.Bus
	ReplenishService replenish.Service
	Scheduler        *scheduler.Scheduler
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config         *config.Config
	Catalog        *catalog.Catalog
	ToolRepository toolstate.Repository
	EventBus       *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Config == nil {
		panic("config is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	// Use in-memory repository if none provided
	repo := cfg.ToolRepository
	if repo == nil {
		repo = toolstate.NewInMemoryRepository(cfg.Catalog)
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	bus.Subscribe(events.EventTypeToolsReplenished, &events.ListenerFunc{
		ListenerID:       "replenish-log",
		ListenerPriority: 100,
		Fn: func(e events.Event) error {
			if r, ok := e.(*events.ToolsReplenishedEvent); ok {
				log.Printf("Provider: profile %s replenished %v (currency %v, reserves %v)",
					r.ProfileID, r.Units, r.CurrencyDebits, r.ReserveDebits)
			}
			return nil
		},
	})

	rc := cfg.Config.Replenish
	excluded := make([]tools.Category, len(rc.ExcludedCategories))
	for i, c := range rc.ExcludedCategories {
		excluded[i] = tools.Category(c)
	}

	replenishService := replenish.NewService(&replenish.ServiceConfig{
		Repository:              repo,
		Notifier:                events.NewNotifier(bus),
		ExcludedCategories:      excluded,
		AllowExcludedCategories: rc.AllowExcluded,
		FallbackCurrency:        tools.CurrencyKind(rc.FallbackCurrency),
		FallbackFlatCost:        rc.FallbackFlatCost,
	})

	method := replenish.MethodBench
	if rc.Silent {
		method = replenish.MethodBenchSilent
	}

	sched, err := scheduler.New(&scheduler.Config{
		Service:    replenishService,
		ProfileID:  cfg.Config.ProfileID,
		Mode:       scheduler.Mode(rc.Mode),
		Method:     method,
		IdleTime:   rc.IdleTime,
		Interval:   rc.Interval,
		Percentage: rc.Percentage,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		Repository:       repo,
		EventBus:         bus,
		ReplenishService: replenishService,
		Scheduler:        sched,
	}, nil
}
