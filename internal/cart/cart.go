package cart

import (
	"github.com/martinvega/sneakhub-backend/internal/pricing"
	"github.com/shopspring/decimal"
)

// LineItem is one row in the cart, uniquely identified by variant. Prices are
// snapshotted at add time; a later catalog price change does not retroactively
// alter items already in the cart.
type LineItem struct {
	VariantID     string           `json:"variant_id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	SaleUnitPrice *decimal.Decimal `json:"sale_unit_price,omitempty"`
	Quantity      int              `json:"quantity"`
	ImageURL      string           `json:"image_url"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
}

// Total returns the line total using the sale price when present.
func (l LineItem) Total() decimal.Decimal {
	price := l.UnitPrice
	if l.SaleUnitPrice != nil {
		price = *l.SaleUnitPrice
	}
	return price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered set of line items owned by a single browsing session.
// Items are unique by variant id and keep insertion order for display.
type Cart struct {
	Items        []LineItem `json:"items"`
	AppliedPromo string     `json:"applied_promo,omitempty"`
}

// AddInput carries the variant snapshot captured when an item is added.
type AddInput struct {
	VariantID     string
	Name          string
	Category      string
	UnitPrice     decimal.Decimal
	SaleUnitPrice *decimal.Decimal
	ImageURL      string
	Size          string
	Color         string
}

// Add merges the input into the cart: an existing line for the same variant
// gains quantity, otherwise a new line is appended with quantity 1. It
// returns false when the input lacks a variant identity, in which case the
// cart is left untouched.
func (c *Cart) Add(input AddInput) bool {
	if input.VariantID == "" {
		return false
	}

	if idx := c.findIndex(input.VariantID); idx >= 0 {
		c.Items[idx].Quantity++
		return true
	}

	item := LineItem{
		VariantID:     input.VariantID,
		Name:          input.Name,
		Category:      input.Category,
		UnitPrice:     input.UnitPrice,
		SaleUnitPrice: input.SaleUnitPrice,
		Quantity:      1,
		ImageURL:      input.ImageURL,
		Sizes:         []string{},
		Colors:        []string{},
	}
	if input.Size != "" {
		item.Sizes = append(item.Sizes, input.Size)
	}
	if input.Color != "" {
		item.Colors = append(item.Colors, input.Color)
	}
	c.Items = append(c.Items, item)
	return true
}

// Remove deletes the line item with the given variant id; absent ids are a
// no-op.
func (c *Cart) Remove(variantID string) {
	idx := c.findIndex(variantID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// SetQuantity replaces the stored quantity for the variant. A quantity of
// zero removes the line; a negative quantity returns ErrInvalidQuantity and
// leaves the cart unchanged.
func (c *Cart) SetQuantity(variantID string, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if qty == 0 {
		c.Remove(variantID)
		return nil
	}
	if idx := c.findIndex(variantID); idx >= 0 {
		c.Items[idx].Quantity = qty
	}
	return nil
}

// TotalItemCount sums the quantities across all line items.
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// PricingLines projects the cart into the pricing engine's input.
func (c *Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{
			UnitPrice:     item.UnitPrice,
			SaleUnitPrice: item.SaleUnitPrice,
			Quantity:      item.Quantity,
		})
	}
	return lines
}

func (c *Cart) findIndex(variantID string) int {
	if variantID == "" {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return i
		}
	}
	return -1
}
