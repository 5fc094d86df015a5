// Package cache implementa la caché externa de resultados de analítica sobre Redis.
// El motor de analítica es puro; la política de frescura (TTL) vive aquí.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/pkg/config"
)

const keyPrefix = "repuestos"

var (
	_ appanalytics.ResultCache = (*RedisCache)(nil)
	_ appanalytics.ResultCache = NoopCache{}
)

// RedisCache guarda resultados serializados en JSON con TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NoopCache nunca encuentra nada ni guarda nada.
type NoopCache struct{}

// New devuelve RedisCache si la caché está habilitada, NoopCache en caso contrario.
func New(cfg config.CacheConfig) (appanalytics.ResultCache, error) {
	if !cfg.Enabled {
		return NoopCache{}, nil
	}
	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewRedisCache(client, ttl), nil
}

// NewRedisCache construye la caché sobre un cliente existente; ttl <= 0 usa el TTL por defecto.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	payload, err := c.client.Get(ctx, prefixed(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decodificar caché %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar caché %s: %w", key, err)
	}
	if err := c.client.Set(ctx, prefixed(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close libera el cliente Redis.
func (c *RedisCache) Close() error { return c.client.Close() }

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }

func prefixed(key string) string {
	return keyPrefix + ":" + key
}
