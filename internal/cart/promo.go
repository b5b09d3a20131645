package cart

import "strings"

// PromoList is the fixed allow-list of promo codes. Matching is
// case-insensitive; accepted codes are normalized to upper case.
type PromoList struct {
	codes map[string]struct{}
}

// NewPromoList builds the allow-list from the configured codes.
func NewPromoList(codes []string) PromoList {
	allowed := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}
	return PromoList{codes: allowed}
}

// Normalize returns the canonical form of the code and whether it is allowed.
func (p PromoList) Normalize(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", false
	}
	_, ok := p.codes[normalized]
	return normalized, ok
}
