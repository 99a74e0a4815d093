package persistence

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormOrderLineRepository implements ordering.OrderLineRepository using GORM
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a new GormOrderLineRepository
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// Create persists a new order line
func (r *GormOrderLineRepository) Create(ctx context.Context, line *ordering.OrderLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

// FindByGroup returns all lines committed under one group ID
func (r *GormOrderLineRepository) FindByGroup(ctx context.Context, groupID int) ([]ordering.OrderLine, error) {
	var lines []ordering.OrderLine
	if err := r.db.WithContext(ctx).
		Where("orden_id = ?", groupID).
		Order("id").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// NextGroupID allocates the next order group identifier. On Postgres this
// draws from a sequence so concurrent commits cannot collide; other dialects
// fall back to max+1, which is safe inside a serialized test transaction.
func (r *GormOrderLineRepository) NextGroupID(ctx context.Context) (int, error) {
	var next int

	if r.db.Dialector.Name() == "postgres" {
		stmt := fmt.Sprintf("SELECT nextval('%s')", groupSequenceName)
		if err := r.db.WithContext(ctx).Raw(stmt).Scan(&next).Error; err != nil {
			return 0, fmt.Errorf("failed to allocate group id: %w", err)
		}
		return next, nil
	}

	if err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(orden_id), 0) + 1 FROM ordenes").
		Scan(&next).Error; err != nil {
		return 0, fmt.Errorf("failed to allocate group id: %w", err)
	}
	return next, nil
}
