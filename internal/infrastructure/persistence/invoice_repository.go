package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements ordering.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// ListRows returns the flattened invoice listing: every invoice joined to the
// order lines of its group and each line's product. An invoice whose group
// has N lines yields N rows.
func (r *GormInvoiceRepository) ListRows(ctx context.Context) ([]ordering.InvoiceRow, error) {
	var rows []ordering.InvoiceRow
	if err := r.db.WithContext(ctx).
		Table("facturas").
		Select(`facturas.id AS invoice_id,
			facturas.orden_id AS group_id,
			facturas.fecha AS date,
			facturas.total AS total,
			ordenes.cliente_nombre AS buyer_name,
			ordenes.cliente_email AS buyer_email,
			ordenes.cliente_direccion AS buyer_address,
			productos.name AS product_name,
			productos.url AS product_image,
			ordenes.cantidad AS quantity`).
		Joins("JOIN ordenes ON ordenes.orden_id = facturas.orden_id").
		Joins("JOIN productos ON productos.id = ordenes.producto_id").
		Order("facturas.id, ordenes.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
