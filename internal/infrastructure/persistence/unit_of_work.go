package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormUnitOfWork implements ordering.UnitOfWork on top of a GORM transaction.
// Repositories handed to the callback share one transaction; the callback's
// error decides commit versus rollback.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a single transaction
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos ordering.TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ordering.TxRepos{
			Products: NewGormProductRepository(tx),
			Orders:   NewGormOrderLineRepository(tx),
		})
	})
}
