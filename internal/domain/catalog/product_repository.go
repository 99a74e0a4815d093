package catalog

import "context"

// ProductRepository provides access to persisted products
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	UpdateImageURL(ctx context.Context, id int, url string) error
	// DecreaseQuantity decrements on-hand stock by qty, refusing to go below
	// zero. Returns shared.ErrInsufficientStock when the guard fails.
	DecreaseQuantity(ctx context.Context, id int, qty int) error
}
