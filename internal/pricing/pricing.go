package pricing

import (
	"fmt"

	"github.com/martinvega/sneakhub-backend/pkg/config"
	"github.com/shopspring/decimal"
)

// Line is the pricing view of a single cart row. Sale price, when present,
// wins over the unit price.
type Line struct {
	UnitPrice     decimal.Decimal
	SaleUnitPrice *decimal.Decimal
	Quantity      int
}

// Total returns the line's contribution to the subtotal.
func (l Line) Total() decimal.Decimal {
	price := l.UnitPrice
	if l.SaleUnitPrice != nil {
		price = *l.SaleUnitPrice
	}
	return price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the derived order summary. It is recomputed from cart contents on
// every read and never stored or mutated independently.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Engine computes order totals from configured rates.
type Engine struct {
	shippingFee   decimal.Decimal
	freeThreshold decimal.Decimal
	taxRate       decimal.Decimal
	promoPercent  decimal.Decimal
}

// NewEngine parses the configured pricing rates.
func NewEngine(cfg config.PricingConfig) (*Engine, error) {
	shippingFee, err := decimal.NewFromString(cfg.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("parsing shipping fee: %w", err)
	}
	freeThreshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return nil, fmt.Errorf("parsing free shipping threshold: %w", err)
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate: %w", err)
	}
	promoPercent, err := decimal.NewFromString(cfg.PromoPercent)
	if err != nil {
		return nil, fmt.Errorf("parsing promo percent: %w", err)
	}
	return &Engine{
		shippingFee:   shippingFee,
		freeThreshold: freeThreshold,
		taxRate:       taxRate,
		promoPercent:  promoPercent,
	}, nil
}

// ComputeTotals derives the order summary from the given lines. Shipping is
// free only strictly above the threshold; a subtotal of exactly 100.00 still
// pays shipping. An empty cart collapses every component to zero so the total
// can never go negative.
func (e *Engine) ComputeTotals(lines []Line, promoApplied bool) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	if subtotal.IsZero() {
		return Totals{
			Subtotal: round(decimal.Zero),
			Shipping: round(decimal.Zero),
			Tax:      round(decimal.Zero),
			Discount: round(decimal.Zero),
			Total:    round(decimal.Zero),
		}
	}

	shipping := e.shippingFee
	if subtotal.GreaterThan(e.freeThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(e.taxRate)

	discount := decimal.Zero
	if promoApplied {
		discount = subtotal.Mul(e.promoPercent)
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discount)

	return Totals{
		Subtotal: round(subtotal),
		Shipping: round(shipping),
		Tax:      round(tax),
		Discount: round(discount),
		Total:    round(total),
	}
}

func round(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
