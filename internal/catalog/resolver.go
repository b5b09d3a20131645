package catalog

// ResolveVariant scans the product's variants for an exact match on both size
// and color code. It returns the first match in variant order, or false when
// the combination has no backing variant; callers must disable add-to-cart in
// that case rather than fall back to a default variant.
func ResolveVariant(product *Product, size, colorCode string) (*Variant, bool) {
	if product == nil || size == "" || colorCode == "" {
		return nil, false
	}
	for i := range product.Variants {
		v := &product.Variants[i]
		if v.Size == size && v.ColorCode == colorCode {
			return v, true
		}
	}
	return nil, false
}
