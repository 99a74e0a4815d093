package handler

import (
	"github.com/gin-gonic/gin"
	appordering "github.com/storefront/backend/internal/application/ordering"
)

// InvoiceHandler serves the invoice listing
type InvoiceHandler struct {
	BaseHandler
	invoices *appordering.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices *appordering.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/invoices", h.List)
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	rows, err := h.invoices.ListInvoices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rows, len(rows))
}
