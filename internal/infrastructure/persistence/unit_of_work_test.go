package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUnitOfWork_Execute(t *testing.T) {
	db := newTestDB(t)
	uow := NewGormUnitOfWork(db)
	products := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		err := uow.Execute(ctx, func(repos ordering.TxRepos) error {
			if err := repos.Products.Create(ctx, &catalog.Product{ID: 25, Name: "pikachu", Quantity: 5}); err != nil {
				return err
			}
			line, err := ordering.NewOrderLine(1, 25, 2, ordering.Buyer{Name: "Ana", Email: "a@b.c", Address: "Calle 1"})
			if err != nil {
				return err
			}
			return repos.Orders.Create(ctx, line)
		})
		require.NoError(t, err)

		p, err := products.FindByID(ctx, 25)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Quantity)
	})

	t.Run("rolls back every write when fn fails", func(t *testing.T) {
		boom := errors.New("boom")
		err := uow.Execute(ctx, func(repos ordering.TxRepos) error {
			if err := repos.Products.DecreaseQuantity(ctx, 25, 3); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		p, findErr := products.FindByID(ctx, 25)
		require.NoError(t, findErr)
		assert.Equal(t, 5, p.Quantity)
	})

	t.Run("surfaces domain errors unchanged", func(t *testing.T) {
		err := uow.Execute(ctx, func(repos ordering.TxRepos) error {
			return repos.Products.DecreaseQuantity(ctx, 25, 100)
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})
}
