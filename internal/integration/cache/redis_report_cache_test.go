package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger-reports/config"
)

type cachedReport struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisReportCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedisReportCache(client, time.Minute, "test:").(*redisReportCache)
}

func TestRedisReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		_, cache := newTestCache(t)

		var dest cachedReport
		found, err := cache.Get(ctx, "absent", &dest)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found {
			t.Error("Get() found = true, want false")
		}
	})

	t.Run("round trip with prefix and ttl", func(t *testing.T) {
		server, cache := newTestCache(t)

		if err := cache.Set(ctx, "summary:2026-03-01:2026-03-31", cachedReport{Name: "summary", Values: []string{"170.00"}}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		if !server.Exists("test:summary:2026-03-01:2026-03-31") {
			t.Fatal("key was not stored with the prefix")
		}
		if ttl := server.TTL("test:summary:2026-03-01:2026-03-31"); ttl != time.Minute {
			t.Errorf("TTL = %s, want 1m", ttl)
		}

		var dest cachedReport
		found, err := cache.Get(ctx, "summary:2026-03-01:2026-03-31", &dest)
		if err != nil || !found {
			t.Fatalf("Get() = %v, %v", found, err)
		}
		if dest.Name != "summary" || len(dest.Values) != 1 || dest.Values[0] != "170.00" {
			t.Errorf("Get() = %+v", dest)
		}
	})

	t.Run("expired entries miss", func(t *testing.T) {
		server, cache := newTestCache(t)

		if err := cache.Set(ctx, "k", cachedReport{Name: "old"}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		server.FastForward(2 * time.Minute)

		var dest cachedReport
		found, err := cache.Get(ctx, "k", &dest)
		if err != nil || found {
			t.Errorf("Get() = %v, %v, want miss", found, err)
		}
	})

	t.Run("corrupt documents are errors", func(t *testing.T) {
		server, cache := newTestCache(t)
		if err := server.Set("test:broken", "{not json"); err != nil {
			t.Fatalf("seed error = %v", err)
		}

		var dest cachedReport
		if _, err := cache.Get(ctx, "broken", &dest); err == nil {
			t.Error("Get() error = nil, want decode error")
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		server, err := miniredis.Run()
		if err != nil {
			t.Fatalf("miniredis.Run() error = %v", err)
		}
		client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
		defer client.Close()
		cache := NewRedisReportCache(client, time.Minute, "test:")
		server.Close()

		var dest cachedReport
		if _, err := cache.Get(ctx, "k", &dest); err == nil {
			t.Error("Get() error = nil, want connection error")
		}
	})
}

func TestNoopReportCache(t *testing.T) {
	cache := NewNoopReportCache()
	if err := cache.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	var dest string
	if found, err := cache.Get(context.Background(), "k", &dest); found || err != nil {
		t.Errorf("Get() = %v, %v, want miss", found, err)
	}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	if _, err := NewRedisClient(&config.RedisConfig{URL: "://bad"}); err == nil {
		t.Error("NewRedisClient() error = nil for an invalid url")
	}
}
