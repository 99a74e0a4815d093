package ordering

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is issued externally against a committed order group. This system
// only reads invoices for the listing view.
type Invoice struct {
	ID      int             `gorm:"column:id;primaryKey" json:"id"`
	GroupID int             `gorm:"column:orden_id;not null;index" json:"group_id"`
	Date    time.Time       `gorm:"column:fecha;not null" json:"date"`
	Total   decimal.Decimal `gorm:"column:total;type:decimal(18,4);not null" json:"total"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "facturas"
}

// InvoiceRow is one row of the invoice listing: an invoice joined against its
// order lines and their products.
type InvoiceRow struct {
	InvoiceID    int             `json:"invoice_id"`
	GroupID      int             `json:"group_id"`
	Date         time.Time       `json:"date"`
	Total        decimal.Decimal `json:"total"`
	BuyerName    string          `json:"buyer_name"`
	BuyerEmail   string          `json:"buyer_email"`
	BuyerAddress string          `json:"buyer_address"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
}
