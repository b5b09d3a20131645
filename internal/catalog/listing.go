package catalog

import "github.com/shopspring/decimal"

// BuildListing derives the stock-aware listing for a product: only variants
// with stock_available > 0 enter available_variants, along with the summed
// stock, the minimum effective price among available variants and the
// available variant count. A product with zero available variants is excluded
// from listings entirely, signaled by ok=false.
func BuildListing(product Product) (Listing, bool) {
	available := make([]Variant, 0, len(product.Variants))
	totalStock := 0
	var minPrice decimal.Decimal

	for _, v := range product.Variants {
		if !v.Purchasable() {
			continue
		}
		price := v.EffectivePrice()
		if len(available) == 0 || price.LessThan(minPrice) {
			minPrice = price
		}
		totalStock += v.StockAvailable
		available = append(available, v)
	}

	if len(available) == 0 {
		return Listing{}, false
	}

	return Listing{
		Product:           product,
		AvailableVariants: available,
		TotalStock:        totalStock,
		MinPrice:          minPrice,
		VariantCount:      len(available),
	}, true
}
