package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IngestService walks the external catalog source and produces the full list
// of catalog entries. Upstream failures degrade the result instead of failing
// the run: a broken page stops pagination, a broken detail drops that item.
type IngestService struct {
	source           catalog.Source
	batchSize        int
	placeholderImage string
	logger           *zap.Logger
}

// NewIngestService creates a new IngestService
func NewIngestService(source catalog.Source, cfg *config.CatalogConfig, logger *zap.Logger) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	batchSize := cfg.DetailConcurrency
	if batchSize <= 0 {
		batchSize = 10
	}
	return &IngestService{
		source:           source,
		batchSize:        batchSize,
		placeholderImage: cfg.PlaceholderImage,
		logger:           logger,
	}
}

// FetchFullCatalog pages through the listing and fetches every detail. The
// result holds whatever could be fetched; it is never an error.
func (s *IngestService) FetchFullCatalog(ctx context.Context) []catalog.CatalogEntry {
	refs := s.collectRefs(ctx)
	entries := s.fetchDetails(ctx, refs)

	s.logger.Info("Catalog ingestion finished",
		zap.Int("refs", len(refs)),
		zap.Int("entries", len(entries)))
	return entries
}

// collectRefs follows the listing pagination until the last page or the first
// page error. Refs gathered before an error are kept.
func (s *IngestService) collectRefs(ctx context.Context) []catalog.EntryRef {
	var refs []catalog.EntryRef

	url := ""
	for {
		page, err := s.source.ListPage(ctx, url)
		if err != nil {
			s.logger.Warn("Catalog pagination stopped early",
				zap.String("url", url),
				zap.Int("refs_so_far", len(refs)),
				zap.Error(err))
			return refs
		}
		refs = append(refs, page.Results...)
		if page.Next == "" {
			return refs
		}
		url = page.Next
	}
}

// fetchDetails resolves refs in fixed-size batches. Each batch runs fully
// concurrently and is awaited before the next batch starts, so at most
// batchSize fetches are ever in flight.
func (s *IngestService) fetchDetails(ctx context.Context, refs []catalog.EntryRef) []catalog.CatalogEntry {
	var entries []catalog.CatalogEntry

	for start := 0; start < len(refs); start += s.batchSize {
		end := start + s.batchSize
		if end > len(refs) {
			end = len(refs)
		}
		batch := refs[start:end]

		results := make([]*catalog.CatalogEntry, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, ref := range batch {
			i, ref := i, ref
			g.Go(func() error {
				entry, err := s.source.FetchDetail(gctx, ref)
				if err != nil {
					// Drop the item, keep the batch going.
					s.logger.Warn("Dropping catalog item",
						zap.String("name", ref.Name),
						zap.Error(err))
					return nil
				}
				if entry.ImageURL == "" {
					entry.ImageURL = s.placeholderImage
				}
				results[i] = entry
				return nil
			})
		}
		_ = g.Wait()

		for _, entry := range results {
			if entry != nil {
				entries = append(entries, *entry)
			}
		}
	}

	return entries
}
