package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// Ingestor produces the full catalog from the external source
type Ingestor interface {
	FetchFullCatalog(ctx context.Context) []catalog.CatalogEntry
}

// SyncService persists ingested catalog entries. All upserts of one run share
// a single transaction; a failed entry rolls back the whole run.
type SyncService struct {
	uow      ordering.UnitOfWork
	ingestor Ingestor
	cache    cache.CatalogCache
	logger   *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(uow ordering.UnitOfWork, ingestor Ingestor, catalogCache cache.CatalogCache, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		uow:      uow,
		ingestor: ingestor,
		cache:    catalogCache,
		logger:   logger,
	}
}

// SyncReport summarizes one sync run
type SyncReport struct {
	Ingested int `json:"ingested"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
}

// SyncCatalog upserts the given entries in one transaction. Existing products
// get a refreshed image URL; new products start with zero stock.
func (s *SyncService) SyncCatalog(ctx context.Context, entries []catalog.CatalogEntry) (*SyncReport, error) {
	report := &SyncReport{Ingested: len(entries)}

	err := s.uow.Execute(ctx, func(repos ordering.TxRepos) error {
		for _, entry := range entries {
			existing, err := repos.Products.FindByID(ctx, entry.ID)
			switch {
			case err == nil:
				if err := repos.Products.UpdateImageURL(ctx, existing.ID, entry.ImageURL); err != nil {
					return fmt.Errorf("failed to update product %d: %w", entry.ID, err)
				}
				report.Updated++
			case errors.Is(err, shared.ErrNotFound):
				product, err := catalog.NewProduct(entry)
				if err != nil {
					return err
				}
				if err := repos.Products.Create(ctx, product); err != nil {
					return fmt.Errorf("failed to create product %d: %w", entry.ID, err)
				}
				report.Created++
			default:
				return fmt.Errorf("failed to look up product %d: %w", entry.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Catalog sync rolled back", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Catalog sync committed",
		zap.Int("ingested", report.Ingested),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated))
	return report, nil
}

// Refresh ingests the full catalog from the source and syncs it. The catalog
// cache is refreshed with the new ingestion result on success.
func (s *SyncService) Refresh(ctx context.Context) (*SyncReport, error) {
	entries := s.ingestor.FetchFullCatalog(ctx)

	report, err := s.SyncCatalog(ctx, entries)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, entries); err != nil {
		// Stale cache only costs an extra ingest later.
		s.logger.Warn("Failed to refresh catalog cache", zap.Error(err))
	}
	return report, nil
}
