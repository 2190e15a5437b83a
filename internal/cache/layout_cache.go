package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrCacheMiss = errors.New("cache miss")

const keyPrefix = "calendar:layout:"

// LayoutCache stores computed layouts as JSON. A nil client turns every
// call into a miss/no-op so the service runs without redis.
type LayoutCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLayoutCache(client *redis.Client, ttl time.Duration) *LayoutCache {
	return &LayoutCache{client: client, ttl: ttl}
}

// NewRedis connects and pings. An empty addr disables the cache.
func NewRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (c *LayoutCache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cached layout %s: %w", key, err)
	}
	return nil
}

func (c *LayoutCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal layout %s: %w", key, err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *LayoutCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
