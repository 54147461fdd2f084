package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contract-mapper/internal/plan"
	"contract-mapper/internal/ports"
)

const suggestionKeyPrefix = "contract-mapper:suggest:"

// RedisOptions tunes the Redis connection beyond what the URL carries.
type RedisOptions struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisClient connects to Redis and verifies the connection.
// It returns nil, nil when no URL is configured.
func NewRedisClient(ctx context.Context, cfg RedisOptions) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}

	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// RedisSuggestionCache stores resolver output as JSON under a TTL.
type RedisSuggestionCache struct {
	client *redis.Client
}

// NewRedisSuggestionCache constructs a Redis-backed suggestion cache.
func NewRedisSuggestionCache(client *redis.Client) *RedisSuggestionCache {
	return &RedisSuggestionCache{client: client}
}

func (c *RedisSuggestionCache) Get(ctx context.Context, key string) (*plan.Plan, bool, error) {
	raw, err := c.client.Get(ctx, suggestionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get suggestions: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("decode cached suggestions: %w", err)
	}

	return &p, true, nil
}

func (c *RedisSuggestionCache) Put(ctx context.Context, key string, p *plan.Plan, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}

	if err := c.client.Set(ctx, suggestionKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("put suggestions: %w", err)
	}

	return nil
}

var _ ports.SuggestionCache = (*RedisSuggestionCache)(nil)
