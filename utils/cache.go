// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"drepto/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient backs the persisted patient cart.
	CartCacheClient *redis.Client
	// AICacheClient holds assistant conversation context.
	AICacheClient *redis.Client
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

// GetCartCacheClient returns the Redis client used for cart storage.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		CartCacheClient = newRedisClient(config.AppConfig.RedisCartDB, "Cart")
	}
	return CartCacheClient
}

// GetAIContextCacheClient returns the Redis client used for assistant context.
func GetAIContextCacheClient() *redis.Client {
	if AICacheClient == nil {
		AICacheClient = newRedisClient(config.AppConfig.RedisAIDB, "AI Context")
	}
	return AICacheClient
}
