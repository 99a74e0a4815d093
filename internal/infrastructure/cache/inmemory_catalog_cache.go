package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// InMemoryCatalogCache implements CatalogCache using process-local storage.
// Suitable for single-instance deployments and testing.
type InMemoryCatalogCache struct {
	mu        sync.RWMutex
	entries   []catalog.CatalogEntry
	expiresAt time.Time

	ttl    time.Duration
	logger *zap.Logger
	clock  func() time.Time

	// Stats for monitoring
	hits   int64
	misses int64
}

// InMemoryCatalogCacheOption is a functional option for configuring the cache
type InMemoryCatalogCacheOption func(*InMemoryCatalogCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryCatalogCacheOption {
	return func(c *InMemoryCatalogCache) {
		c.logger = logger
	}
}

// WithInMemoryClock overrides the time source, for tests
func WithInMemoryClock(clock func() time.Time) InMemoryCatalogCacheOption {
	return func(c *InMemoryCatalogCache) {
		c.clock = clock
	}
}

// NewInMemoryCatalogCache creates a new in-memory catalog cache
func NewInMemoryCatalogCache(ttl time.Duration, opts ...InMemoryCatalogCacheOption) *InMemoryCatalogCache {
	c := &InMemoryCatalogCache{
		ttl:    ttl,
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached ingestion result, or (nil, nil) on a miss
func (c *InMemoryCatalogCache) Get(ctx context.Context) ([]catalog.CatalogEntry, error) {
	c.mu.RLock()
	entries, expiresAt := c.entries, c.expiresAt
	c.mu.RUnlock()

	if entries == nil || c.clock().After(expiresAt) {
		atomic.AddInt64(&c.misses, 1)
		c.logger.Debug("Catalog cache miss")
		return nil, nil
	}

	atomic.AddInt64(&c.hits, 1)
	c.logger.Debug("Catalog cache hit", zap.Int("entries", len(entries)))

	// Hand out a copy so callers cannot mutate the cached slice.
	out := make([]catalog.CatalogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Set replaces the cached ingestion result
func (c *InMemoryCatalogCache) Set(ctx context.Context, entries []catalog.CatalogEntry) error {
	stored := make([]catalog.CatalogEntry, len(entries))
	copy(stored, entries)

	c.mu.Lock()
	c.entries = stored
	c.expiresAt = c.clock().Add(c.ttl)
	c.mu.Unlock()

	c.logger.Debug("Catalog cache updated",
		zap.Int("entries", len(entries)),
		zap.Duration("ttl", c.ttl))
	return nil
}

// Invalidate drops the cached result
func (c *InMemoryCatalogCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()

	c.logger.Debug("Catalog cache invalidated")
	return nil
}

// Close releases any resources held by the cache
func (c *InMemoryCatalogCache) Close() error {
	return nil
}

// GetStats returns cache statistics
func (c *InMemoryCatalogCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Ensure InMemoryCatalogCache implements CatalogCache
var _ CatalogCache = (*InMemoryCatalogCache)(nil)
