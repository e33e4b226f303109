package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/events"
	"github.com/KirkDiggler/tool-replenish/internal/repositories/toolstate"
	"github.com/KirkDiggler/tool-replenish/internal/services/replenish"
)

func main() {
	ctx := context.Background()

	// Parse command line arguments
	profileID := flag.String("profile", "", "Profile ID to inspect")
	catalogPath := flag.String("catalog", "catalog.yaml", "Tool catalog file")
	quick := flag.Bool("quick", false, "Simulate a quick craft instead of a bench rest")
	sqlitePath := flag.String("sqlite", "", "Read a local SQLite state file instead of Redis")
	flag.Parse()

	if *profileID == "" {
		log.Fatal("Please provide a profile ID with -profile flag")
	}

	toolCatalog, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var repo toolstate.Repository
	if *sqlitePath != "" {
		local, openErr := toolstate.NewSQLite(*sqlitePath, toolCatalog)
		if openErr != nil {
			log.Fatalf("Failed to open SQLite state: %v", openErr)
		}
		defer local.Close()
		repo = local
	} else {
		// Set up Redis
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = "redis://localhost:6379/0"
		}

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Fatalf("Failed to parse Redis URL: %v", parseErr)
		}

		client := redis.NewClient(opts)
		defer client.Close()

		// Test connection
		if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}

		repo = toolstate.NewRedis(client, toolCatalog)
	}

	profile, err := repo.LoadProfile(ctx, *profileID)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	fmt.Printf("Profile %s\n", profile.ID)
	fmt.Printf("\nEquipped tools (%d):\n", len(profile.Equipped))
	for _, name := range profile.Equipped {
		data := profile.Tools[name]
		amount := 0
		if data != nil {
			amount = data.AmountLeft
		}
		t, ok := toolCatalog.Get(name)
		if !ok {
			fmt.Printf("  %s: unknown tool\n", name)
			continue
		}
		storage, err := repo.GetStorageCapacity(ctx, *profileID, t)
		if err != nil {
			fmt.Printf("  %s: ERROR - %v\n", name, err)
			continue
		}
		fmt.Printf("  %s: %d/%d\n", name, amount, storage)
	}

	fmt.Println("\nCurrencies:")
	for _, kind := range sortedKeys(profile.Currencies) {
		fmt.Printf("  %s: %d\n", kind, profile.Currencies[kind])
	}

	fmt.Println("\nReserves:")
	for _, pool := range sortedKeys(profile.Reserves) {
		r := profile.Reserves[pool]
		if r.IsInfinite() {
			fmt.Printf("  %s: infinite\n", pool)
			continue
		}
		fmt.Printf("  %s: %d/%d (extra=%t)\n", pool, r.RefillsLeft, r.RefillsMax, r.UsedExtra)
	}

	method := replenish.MethodBench
	if *quick {
		method = replenish.MethodQuickCraft
	}

	// Simulation only reads, the bus has no listeners
	svc := replenish.NewService(&replenish.ServiceConfig{
		Repository: repo,
		Notifier:   events.NewNotifier(events.NewBus()),
	})
	result, err := svc.Attempt(ctx, &replenish.AttemptInput{ProfileID: *profileID, Method: method})
	if err != nil {
		log.Fatalf("Failed to simulate: %v", err)
	}
	fmt.Printf("\nA %s now would replenish: %t\n", method, result.Replenished)
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
