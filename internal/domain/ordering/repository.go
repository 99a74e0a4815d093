package ordering

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// OrderLineRepository provides access to persisted order lines
type OrderLineRepository interface {
	Create(ctx context.Context, line *OrderLine) error
	FindByGroup(ctx context.Context, groupID int) ([]OrderLine, error)
	// NextGroupID allocates the next order group identifier. Allocations are
	// strictly increasing and must not collide under concurrent commits.
	NextGroupID(ctx context.Context) (int, error)
}

// InvoiceRepository reads invoices for the listing view
type InvoiceRepository interface {
	ListRows(ctx context.Context) ([]InvoiceRow, error)
}

// TxRepos bundles the repositories bound to one transaction.
type TxRepos struct {
	Products catalog.ProductRepository
	Orders   OrderLineRepository
}

// UnitOfWork runs a function inside a single store transaction. The
// transaction commits when fn returns nil and rolls back otherwise; the
// underlying connection is released on every exit path.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos TxRepos) error) error
}
