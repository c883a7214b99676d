package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/admind-agency/admind-api/pkg/config"
)

// RedisClient wraps a go-redis client behind the same Set/Get/Delete surface
// as MemoryStore so callers can swap backends.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{rdb: rdb}, nil
}

// Set stores a key-value pair with expiration
func (c *RedisClient) Set(key string, value string, expiration time.Duration) {
	c.rdb.Set(context.Background(), key, value, expiration)
}

// Get retrieves a value by key (returns false if not found)
func (c *RedisClient) Get(key string) (string, bool) {
	value, err := c.rdb.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Delete removes a key
func (c *RedisClient) Delete(key string) {
	c.rdb.Del(context.Background(), key)
}

// Close closes the underlying connection
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
