package catalog

import (
	"testing"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with zero quantity", func(t *testing.T) {
		product, err := NewProduct(CatalogEntry{ID: 25, Name: "pikachu", ImageURL: "http://img/25.png"})

		assert.NoError(t, err)
		assert.Equal(t, 25, product.ID)
		assert.Equal(t, "pikachu", product.Name)
		assert.Equal(t, "http://img/25.png", product.ImageURL)
		assert.Equal(t, 0, product.Quantity)
	})

	t.Run("rejects non-positive ID", func(t *testing.T) {
		_, err := NewProduct(CatalogEntry{ID: 0, Name: "pikachu"})

		assert.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_ID", domainErr.Code)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(CatalogEntry{ID: 7, Name: ""})

		assert.Error(t, err)
	})
}

func TestProductCanFulfill(t *testing.T) {
	product := Product{ID: 1, Name: "bulbasaur", Quantity: 5}

	assert.True(t, product.CanFulfill(5))
	assert.True(t, product.CanFulfill(1))
	assert.False(t, product.CanFulfill(6))
	assert.False(t, product.CanFulfill(0))
	assert.False(t, product.CanFulfill(-1))
}
