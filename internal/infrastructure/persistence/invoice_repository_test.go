package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInvoiceRepository_ListRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	products := NewGormProductRepository(db)
	orders := NewGormOrderLineRepository(db)
	repo := NewGormInvoiceRepository(db)

	require.NoError(t, products.Create(ctx, &catalog.Product{ID: 25, Name: "pikachu", ImageURL: "https://img/25.png", Quantity: 10}))
	require.NoError(t, products.Create(ctx, &catalog.Product{ID: 1, Name: "bulbasaur", ImageURL: "https://img/1.png", Quantity: 10}))

	buyer := ordering.Buyer{Name: "Ana", Email: "ana@example.com", Address: "Calle 1"}
	for _, pid := range []int{25, 1} {
		line, err := ordering.NewOrderLine(1, pid, 2, buyer)
		require.NoError(t, err)
		require.NoError(t, orders.Create(ctx, line))
	}

	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&ordering.Invoice{
		ID:      1,
		GroupID: 1,
		Date:    issued,
		Total:   decimal.NewFromFloat(49.90),
	}).Error)

	t.Run("fans out one row per order line", func(t *testing.T) {
		rows, err := repo.ListRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, 1, rows[0].InvoiceID)
		assert.Equal(t, 1, rows[0].GroupID)
		assert.Equal(t, "pikachu", rows[0].ProductName)
		assert.Equal(t, "https://img/25.png", rows[0].ProductImage)
		assert.Equal(t, 2, rows[0].Quantity)
		assert.Equal(t, "Ana", rows[0].BuyerName)
		assert.True(t, decimal.NewFromFloat(49.90).Equal(rows[0].Total))

		assert.Equal(t, "bulbasaur", rows[1].ProductName)
	})

	t.Run("invoice without lines yields no rows", func(t *testing.T) {
		require.NoError(t, db.Create(&ordering.Invoice{
			ID:      2,
			GroupID: 42,
			Date:    issued,
			Total:   decimal.Zero,
		}).Error)

		rows, err := repo.ListRows(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
