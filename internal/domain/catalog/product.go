package catalog

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// Product is a catalog item persisted by the sync. The ID is assigned by the
// external catalog source and is never generated locally.
type Product struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"column:name;type:varchar(200);not null;index" json:"name"`
	ImageURL string `gorm:"column:url;type:varchar(500)" json:"image_url"`
	Quantity int    `gorm:"column:cantidad;not null;default:0" json:"quantity"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "productos"
}

// NewProduct creates a product from an ingested catalog entry. On-hand
// quantity always starts at zero; stock is managed locally, not upstream.
func NewProduct(entry CatalogEntry) (*Product, error) {
	if entry.ID <= 0 {
		return nil, shared.NewDomainError("INVALID_ID", "Product ID must be positive")
	}
	if entry.Name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	return &Product{
		ID:       entry.ID,
		Name:     entry.Name,
		ImageURL: entry.ImageURL,
		Quantity: 0,
	}, nil
}

// UpdateImageURL refreshes the image from a newer catalog entry.
func (p *Product) UpdateImageURL(url string) {
	p.ImageURL = url
}

// CanFulfill reports whether qty units can be taken from stock.
func (p *Product) CanFulfill(qty int) bool {
	return qty > 0 && p.Quantity >= qty
}
