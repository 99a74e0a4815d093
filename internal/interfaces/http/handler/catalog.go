package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/storefront/backend/internal/application/catalog"
)

// CatalogHandler serves the catalog endpoints: the upstream-backed picker,
// the sync trigger and the persisted product listing.
type CatalogHandler struct {
	BaseHandler
	listing *appcatalog.ListingService
	sync    *appcatalog.SyncService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(listing *appcatalog.ListingService, sync *appcatalog.SyncService) *CatalogHandler {
	return &CatalogHandler{listing: listing, sync: sync}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/picker", h.Picker)
		catalog.GET("/products", h.ListProducts)
		catalog.POST("/sync", h.Sync)
	}
}

// Picker handles GET /catalog/picker?search=
func (h *CatalogHandler) Picker(c *gin.Context) {
	view, err := h.listing.Picker(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, view, len(view.Products))
}

// ListProducts handles GET /catalog/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.listing.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, len(products))
}

// Sync handles POST /catalog/sync: ingest the full upstream catalog and
// persist it.
func (h *CatalogHandler) Sync(c *gin.Context) {
	report, err := h.sync.Refresh(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
