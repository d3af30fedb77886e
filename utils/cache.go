package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"wintermarket/config"
)

var (
	// CacheClient is the generic cache client (calendar slot counts, booking status).
	CacheClient *redis.Client
	// SelectionCacheClient is the dedicated client for visitor selection sessions.
	SelectionCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSelectionCache initializes the Redis client for selection sessions.
func InitSelectionCache() {
	SelectionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSelectionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SelectionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Selection Cache): %v", err)
	}
}

// GetSelectionCacheClient returns the Redis client for selection sessions.
func GetSelectionCacheClient() *redis.Client {
	if SelectionCacheClient == nil {
		InitSelectionCache()
	}
	return SelectionCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitCache()
	InitSelectionCache()
}
