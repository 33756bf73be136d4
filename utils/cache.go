// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"sevasetu/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient holds lookup results and last-booking snapshots.
	CacheClient *redis.Client
	// CartClient holds anonymous carts.
	CartClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every Redis client the API uses.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	CartClient = newRedisClient(config.AppConfig.RedisCartDB, "cart")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	}
	return CacheClient
}

// GetCartClient returns the cart store client.
func GetCartClient() *redis.Client {
	if CartClient == nil {
		CartClient = newRedisClient(config.AppConfig.RedisCartDB, "cart")
	}
	return CartClient
}

// RedisClients lists the connected clients for health checks.
func RedisClients() []*redis.Client {
	return []*redis.Client{GetCacheClient(), GetCartClient()}
}
