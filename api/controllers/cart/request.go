package cart

// AddItemRequest selects the variant to add by product, size and color. The
// server resolves the variant and snapshots its price; clients never submit
// prices.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	ColorCode string `json:"color_code" validate:"required"`
}

// SetQuantityRequest replaces the stored quantity for a line item. Quantity is
// a pointer so an explicit zero (which removes the line) survives decoding.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// ApplyPromoRequest submits a promo code for the session cart.
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}
