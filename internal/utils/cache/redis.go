package cache

import (
	"NutriSnap-Backend/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrCacheMiss = errors.New("cache miss")

type (
	// Cache is a small JSON-over-redis wrapper used to memoize stats
	// responses. A nil-safe no-op is returned when redis is unreachable
	// so the API keeps working without it.
	Cache interface {
		Get(ctx context.Context, key string, dest interface{}) error
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
		DeletePattern(ctx context.Context, pattern string) error
	}

	redisCache struct {
		client *redis.Client
	}

	noopCache struct{}
)

func NewRedisCache() Cache {
	host := utils.GetConfig("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := utils.GetConfig("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	addr := fmt.Sprintf("%s:%s", host, port)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     utils.GetConfig("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		utils.Logger.Warn("redis_unavailable_cache_disabled",
			zap.Error(err),
			zap.String("addr", addr),
		)
		return &noopCache{}
	}

	utils.Logger.Info("redis_connected", zap.String("addr", addr))
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	} else if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *redisCache) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete keys failed: %w", err)
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	return nil
}

func (n *noopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return ErrCacheMiss
}

func (n *noopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (n *noopCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}
