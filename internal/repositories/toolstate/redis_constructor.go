package toolstate

import (
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
)

// NewRedis creates a Redis-backed tool state repository
func NewRedis(client redis.UniversalClient, c *catalog.Catalog) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:  client,
		Catalog: c,
	})
}
