package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/config"
	"github.com/KirkDiggler/tool-replenish/internal/domain/hero"
	"github.com/KirkDiggler/tool-replenish/internal/handlers/hud"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/services"
	"github.com/KirkDiggler/tool-replenish/internal/services/scheduler"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Profile: %s", cfg.ProfileID)
	log.Printf("Mode: %s", cfg.Replenish.Mode)

	toolCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d tools from %s", len(toolCatalog.Tools()), cfg.CatalogPath)

	providerConfig := &services.ProviderConfig{
		Config:  cfg,
		Catalog: toolCatalog,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")
				providerConfig.ToolRepository = toolstate.NewRedis(redisClient, toolCatalog)
			}
		}
	} else {
		log.Println("No REDIS_URL found")
	}

	// Local state file when Redis is not in play
	var sqliteRepo *toolstate.SQLiteRepository
	if providerConfig.ToolRepository == nil && cfg.SQLite.Path != "" {
		repo, openErr := toolstate.NewSQLite(cfg.SQLite.Path, toolCatalog)
		if openErr != nil {
			log.Printf("Failed to open SQLite state at %s: %v", cfg.SQLite.Path, openErr)
		} else {
			log.Printf("Using SQLite state at %s", cfg.SQLite.Path)
			sqliteRepo = repo
			providerConfig.ToolRepository = repo
		}
	}

	if providerConfig.ToolRepository == nil {
		log.Println("Using in-memory repository")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Serve the HUD relay if an address is configured
	var hudServer *http.Server
	if cfg.HUDAddr != "" {
		relay := hud.NewRelay()
		relay.Register(provider.EventBus)
		defer relay.Close()

		mux := http.NewServeMux()
		mux.Handle("/hud", relay)
		hudServer = &http.Server{Addr: cfg.HUDAddr, Handler: mux}

		go func() {
			log.Printf("HUD relay listening on %s", cfg.HUDAddr)
			if err := hudServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("HUD relay stopped: %v", err)
			}
		}()
	}

	fmt.Println("Replenisher is now running. Press CTRL-C to exit.")

	// Without a host feeding hero state the hero rests at a bench
	resting := &hero.State{AtBench: true}

	frame := cfg.FrameDuration()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("Shutting down...")
			if hudServer != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := hudServer.Shutdown(shutdownCtx); err != nil {
					log.Printf("Error stopping HUD relay: %v", err)
				}
				cancel()
			}
			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Printf("Error closing Redis connection: %v", err)
				}
			}
			if sqliteRepo != nil {
				if err := sqliteRepo.Close(); err != nil {
					log.Printf("Error closing SQLite state: %v", err)
				}
			}
			return
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now

			if _, err := provider.Scheduler.Update(ctx, scheduler.Frame{Delta: delta, Hero: resting}); err != nil {
				log.Printf("Replenish failed: %v", err)
			}
		}
	}
}
