package ordering

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CheckoutService commits orders atomically: group ID allocation, order
// lines, stock decrements and the export file all succeed or fail together.
type CheckoutService struct {
	uow      ordering.UnitOfWork
	exporter ordering.Exporter
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(uow ordering.UnitOfWork, exporter ordering.Exporter, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		uow:      uow,
		exporter: exporter,
		validate: validator.New(),
		logger:   logger,
	}
}

// orderRecord is one selection after validation and parsing
type orderRecord struct {
	ProductID int
	Name      string
	Quantity  int
}

// CommitOrder validates the request, then commits every resolvable selection
// under one fresh order group inside a single transaction. Selections whose
// name no longer resolves to a product are skipped, not fatal. Validation
// failures happen before any store access.
func (s *CheckoutService) CommitOrder(ctx context.Context, req CommitOrderRequest) (*CommitOrderResult, error) {
	records, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	buyer := ordering.Buyer{
		Name:    req.Buyer.Name,
		Email:   req.Buyer.Email,
		Address: req.Buyer.Address,
	}

	result := &CommitOrderResult{}
	err = s.uow.Execute(ctx, func(repos ordering.TxRepos) error {
		groupID, err := repos.Orders.NextGroupID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate order group: %w", err)
		}
		result.GroupID = groupID

		for _, rec := range records {
			product, err := repos.Products.FindByName(ctx, rec.Name)
			if errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("Skipping unresolvable selection",
					zap.Int("group_id", groupID),
					zap.String("name", rec.Name))
				result.Skipped++
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to resolve product %q: %w", rec.Name, err)
			}

			line, err := ordering.NewOrderLine(groupID, product.ID, rec.Quantity, buyer)
			if err != nil {
				return err
			}
			if err := repos.Orders.Create(ctx, line); err != nil {
				return fmt.Errorf("failed to create order line: %w", err)
			}
			if err := repos.Products.DecreaseQuantity(ctx, product.ID, rec.Quantity); err != nil {
				return err
			}
			result.Committed++
		}

		// The export belongs to the commit: if the file cannot be written
		// the order must not exist either.
		path, err := s.exporter.Export(ctx, exportRows(records))
		if err != nil {
			return fmt.Errorf("failed to export order: %w", err)
		}
		result.ExportPath = path
		return nil
	})
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		s.logger.Error("Order commit rolled back", zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.logger.Info("Order committed",
		zap.Int("group_id", result.GroupID),
		zap.Int("committed", result.Committed),
		zap.Int("skipped", result.Skipped),
		zap.String("export_path", result.ExportPath))
	return result, nil
}

// parseRequest enforces the commit contract: struct-level validation plus
// per-selection parsing of the "id,name" ref and the quantity string.
func (s *CheckoutService) parseRequest(req CommitOrderRequest) ([]orderRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION", err.Error())
	}

	records := make([]orderRecord, 0, len(req.Selections))
	for i, sel := range req.Selections {
		rec, err := parseSelection(sel)
		if err != nil {
			return nil, shared.NewDomainError("VALIDATION",
				fmt.Sprintf("selection %d: %s", i, err.Error()))
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseSelection splits the "id,name" ref and checks the quantity
func parseSelection(sel SelectedProduct) (orderRecord, error) {
	idStr, name, found := strings.Cut(sel.ProductRef, ",")
	if !found {
		return orderRecord{}, fmt.Errorf("product ref %q is not of the form id,name", sel.ProductRef)
	}

	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil || id <= 0 {
		return orderRecord{}, fmt.Errorf("product ref %q has no positive numeric id", sel.ProductRef)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return orderRecord{}, fmt.Errorf("product ref %q has an empty name", sel.ProductRef)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(sel.Quantity))
	if err != nil || qty <= 0 {
		return orderRecord{}, fmt.Errorf("quantity %q is not a positive integer", sel.Quantity)
	}

	return orderRecord{ProductID: id, Name: name, Quantity: qty}, nil
}

// exportRows maps parsed selections to export rows, as submitted
func exportRows(records []orderRecord) []ordering.ExportRow {
	rows := make([]ordering.ExportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, ordering.ExportRow{
			ProductID:   rec.ProductID,
			ProductName: rec.Name,
			Quantity:    rec.Quantity,
		})
	}
	return rows
}
