// Package cache implements the report cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger-reports/config"
	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
)

// redisReportCache implements the adapter.ReportCache interface.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisReportCache creates a report cache storing JSON documents in Redis.
func NewRedisReportCache(client *redis.Client, ttl time.Duration, prefix string) adapter.ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

// NewRedisClient creates a Redis client from the cache configuration.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	options, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}
	if cfg.DB != 0 {
		options.DB = cfg.DB
	}
	return redis.NewClient(options), nil
}

// Get decodes the cached document for key into dest.
func (c *redisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cached report: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return true, nil
}

// Set stores value under key for the configured TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached report: %w", err)
	}
	return nil
}

// noopReportCache never stores anything.
type noopReportCache struct{}

// NewNoopReportCache creates a report cache that always misses.
func NewNoopReportCache() adapter.ReportCache {
	return noopReportCache{}
}

func (noopReportCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopReportCache) Set(context.Context, string, any) error { return nil }
