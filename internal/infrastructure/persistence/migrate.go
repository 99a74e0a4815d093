package persistence

import (
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// groupSequenceName is the store-side allocator for order group identifiers.
const groupSequenceName = "orden_grupo_seq"

// Migrate creates or updates the schema for all persisted aggregates.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalog.Product{},
		&ordering.OrderLine{},
		&ordering.Invoice{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// Group IDs come from a dedicated sequence so concurrent commits never
	// collide. Dialects without sequences fall back to max+1 at read time.
	if db.Dialector.Name() == "postgres" {
		stmt := fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s START 1", groupSequenceName)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create group sequence: %w", err)
		}
	}

	return nil
}
