package cache

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CatalogCache holds the most recent full ingestion result so picker requests
// do not re-walk the upstream catalog on every call. A miss returns
// (nil, nil); callers fall through to the ingestor.
type CatalogCache interface {
	Get(ctx context.Context) ([]catalog.CatalogEntry, error)
	Set(ctx context.Context, entries []catalog.CatalogEntry) error
	Invalidate(ctx context.Context) error
	Close() error
}

// NoopCatalogCache never caches. Used when the cache provider is "none".
type NoopCatalogCache struct{}

// NewNoopCatalogCache creates a cache that always misses
func NewNoopCatalogCache() *NoopCatalogCache {
	return &NoopCatalogCache{}
}

func (NoopCatalogCache) Get(ctx context.Context) ([]catalog.CatalogEntry, error) { return nil, nil }

func (NoopCatalogCache) Set(ctx context.Context, entries []catalog.CatalogEntry) error { return nil }

func (NoopCatalogCache) Invalidate(ctx context.Context) error { return nil }

func (NoopCatalogCache) Close() error { return nil }

// Ensure NoopCatalogCache implements CatalogCache
var _ CatalogCache = (*NoopCatalogCache)(nil)
