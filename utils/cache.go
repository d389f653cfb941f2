// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/bol3ezzz/spalux-backend/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client. It stays nil when REDIS_ADDR is
// unset, in which case callers skip caching entirely.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client when configured.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, running without cache")
		return
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
