package catalog

import (
	"context"
	"strings"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// PickerView is the view-model for the product picker: the ingested catalog
// filtered by the search query.
type PickerView struct {
	Products    []catalog.CatalogEntry `json:"products"`
	SearchQuery string                 `json:"search_query"`
}

// ListingService serves the read-side catalog views: the upstream-backed
// picker and the persisted product listing.
type ListingService struct {
	ingestor Ingestor
	cache    cache.CatalogCache
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewListingService creates a new ListingService
func NewListingService(ingestor Ingestor, catalogCache cache.CatalogCache, products catalog.ProductRepository, logger *zap.Logger) *ListingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingService{
		ingestor: ingestor,
		cache:    catalogCache,
		products: products,
		logger:   logger,
	}
}

// Picker returns the full ingested catalog filtered by a case-insensitive
// name substring. The ingestion result is served from the catalog cache when
// fresh; otherwise the upstream is walked and the cache refreshed.
func (s *ListingService) Picker(ctx context.Context, search string) (*PickerView, error) {
	entries, err := s.cache.Get(ctx)
	if err != nil {
		// Treat a broken cache as a miss.
		s.logger.Warn("Catalog cache read failed", zap.Error(err))
		entries = nil
	}
	if entries == nil {
		entries = s.ingestor.FetchFullCatalog(ctx)
		if err := s.cache.Set(ctx, entries); err != nil {
			s.logger.Warn("Failed to populate catalog cache", zap.Error(err))
		}
	}

	view := &PickerView{
		Products:    filterByName(entries, search),
		SearchQuery: search,
	}
	return view, nil
}

// ListProducts returns every persisted product
func (s *ListingService) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return s.products.FindAll(ctx)
}

// filterByName keeps entries whose name contains the query, ignoring case.
// An empty query keeps everything.
func filterByName(entries []catalog.CatalogEntry, query string) []catalog.CatalogEntry {
	if query == "" {
		return entries
	}
	needle := strings.ToLower(query)
	filtered := make([]catalog.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
