package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// catalogCacheKey is the Redis key holding the serialized ingestion result
const catalogCacheKey = "catalog:entries"

// RedisCatalogCache implements CatalogCache backed by Redis, so multiple
// instances share one cached ingestion result.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCatalogCache creates a Redis-backed catalog cache and verifies the
// connection before returning.
func NewRedisCatalogCache(cfg *config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get returns the cached ingestion result, or (nil, nil) on a miss
func (c *RedisCatalogCache) Get(ctx context.Context) ([]catalog.CatalogEntry, error) {
	payload, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("Catalog cache miss")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var entries []catalog.CatalogEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		// A corrupt payload behaves like a miss; the next Set overwrites it.
		c.logger.Warn("Dropping corrupt catalog cache payload", zap.Error(err))
		return nil, nil
	}

	c.logger.Debug("Catalog cache hit", zap.Int("entries", len(entries)))
	return entries, nil
}

// Set replaces the cached ingestion result
func (c *RedisCatalogCache) Set(ctx context.Context, entries []catalog.CatalogEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize catalog cache: %w", err)
	}
	if err := c.client.Set(ctx, catalogCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	c.logger.Debug("Catalog cache updated",
		zap.Int("entries", len(entries)),
		zap.Duration("ttl", c.ttl))
	return nil
}

// Invalidate drops the cached result
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCatalogCache implements CatalogCache
var _ CatalogCache = (*RedisCatalogCache)(nil)
