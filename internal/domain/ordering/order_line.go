package ordering

import (
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderLine is one selected item persisted by a single order commit. All lines
// of one commit share the same GroupID. Lines are insert-only.
type OrderLine struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	GroupID      int    `gorm:"column:orden_id;not null;index" json:"group_id"`
	ProductID    int    `gorm:"column:producto_id;not null" json:"product_id"`
	Quantity     int    `gorm:"column:cantidad;not null" json:"quantity"`
	BuyerName    string `gorm:"column:cliente_nombre;type:varchar(200);not null" json:"buyer_name"`
	BuyerEmail   string `gorm:"column:cliente_email;type:varchar(200);not null" json:"buyer_email"`
	BuyerAddress string `gorm:"column:cliente_direccion;type:varchar(500);not null" json:"buyer_address"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "ordenes"
}

// Buyer identifies the customer placing an order.
type Buyer struct {
	Name    string
	Email   string
	Address string
}

// NewOrderLine creates a line for one resolved product under a group.
func NewOrderLine(groupID, productID, quantity int, buyer Buyer) (*OrderLine, error) {
	if groupID <= 0 {
		return nil, shared.NewDomainError("INVALID_GROUP", "Order group ID must be positive")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if buyer.Name == "" || buyer.Email == "" || buyer.Address == "" {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer name, email and address are required")
	}
	return &OrderLine{
		GroupID:      groupID,
		ProductID:    productID,
		Quantity:     quantity,
		BuyerName:    buyer.Name,
		BuyerEmail:   buyer.Email,
		BuyerAddress: buyer.Address,
	}, nil
}
