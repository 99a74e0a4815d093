package ordering

import (
	"context"

	"github.com/storefront/backend/internal/domain/ordering"
	"go.uber.org/zap"
)

// InvoiceService serves the invoice listing view
type InvoiceService struct {
	invoices ordering.InvoiceRepository
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices ordering.InvoiceRepository, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{invoices: invoices, logger: logger}
}

// ListInvoices returns every invoice joined against its order lines and their
// products, one row per line.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]ordering.InvoiceRow, error) {
	rows, err := s.invoices.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
