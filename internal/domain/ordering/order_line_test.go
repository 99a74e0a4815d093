package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderLine(t *testing.T) {
	buyer := Buyer{Name: "Ana", Email: "a@x.com", Address: "Calle 1"}

	t.Run("creates line", func(t *testing.T) {
		line, err := NewOrderLine(1, 25, 2, buyer)

		assert.NoError(t, err)
		assert.Equal(t, 1, line.GroupID)
		assert.Equal(t, 25, line.ProductID)
		assert.Equal(t, 2, line.Quantity)
		assert.Equal(t, "Ana", line.BuyerName)
		assert.Equal(t, "a@x.com", line.BuyerEmail)
		assert.Equal(t, "Calle 1", line.BuyerAddress)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrderLine(1, 25, 0, buyer)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive group", func(t *testing.T) {
		_, err := NewOrderLine(0, 25, 2, buyer)
		assert.Error(t, err)
	})

	t.Run("rejects incomplete buyer", func(t *testing.T) {
		_, err := NewOrderLine(1, 25, 2, Buyer{Name: "Ana"})
		assert.Error(t, err)
	})
}
