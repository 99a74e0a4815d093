package cache

import (
	"fmt"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CatalogCacheFactory creates catalog caches based on configuration
type CatalogCacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCatalogCacheFactory creates a new factory
func NewCatalogCacheFactory(cfg *config.Config, logger *zap.Logger) *CatalogCacheFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogCacheFactory{cfg: cfg, logger: logger}
}

// Create builds the catalog cache named by cache.provider
func (f *CatalogCacheFactory) Create() (CatalogCache, error) {
	switch f.cfg.Cache.Provider {
	case "memory":
		f.logger.Info("using in-memory catalog cache")
		return NewInMemoryCatalogCache(f.cfg.Cache.TTL, WithInMemoryLogger(f.logger)), nil
	case "redis":
		c, err := NewRedisCatalogCache(&f.cfg.Redis, f.cfg.Cache.TTL, f.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis catalog cache: %w", err)
		}
		f.logger.Info("using Redis catalog cache")
		return c, nil
	case "none":
		f.logger.Info("catalog caching disabled")
		return NewNoopCatalogCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache provider %q", f.cfg.Cache.Provider)
	}
}
