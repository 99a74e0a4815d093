package ordering

// SelectedProduct is one picked item as submitted by the storefront. The
// ProductRef carries "id,name" as a single field, matching the picker's
// option values.
type SelectedProduct struct {
	ProductRef string `json:"product_ref" validate:"required"`
	Quantity   string `json:"quantity" validate:"required"`
}

// BuyerInput identifies the customer placing the order
type BuyerInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

// CommitOrderRequest is the full input of one order commit
type CommitOrderRequest struct {
	Selections []SelectedProduct `json:"selections" validate:"required,min=1,dive"`
	Buyer      BuyerInput        `json:"buyer" validate:"required"`
}

// CommitOrderResult reports one committed order group
type CommitOrderResult struct {
	GroupID    int    `json:"group_id"`
	Committed  int    `json:"committed"`
	Skipped    int    `json:"skipped"`
	ExportPath string `json:"export_path"`
}
