package resolve

import "strings"

// MatchTier identifies which heuristic produced a component match. Recorded
// on BOM component links so low-precision matches can be audited later.
type MatchTier string

const (
	TierExact       MatchTier = "exact"
	TierContainment MatchTier = "containment"
	TierPrefix      MatchTier = "prefix"
	TierTitle       MatchTier = "title"
)

// brandPrefixes are tried in this order when exact and containment matching
// both fail. Supplier catalogs are inconsistent about carrying the brand
// prefix on the stock code.
var brandPrefixes = []string{"MAK", "DEW", "MAKITA", "DEWALT"}

// MatchComponent resolves a parsed SKU pattern against the catalog via a
// tiered heuristic: exact match, containment in either direction, then
// brand-prefix add/strip. The first structural hit in catalog iteration
// order wins; there is no scoring. ok is false when no tier matched.
func MatchComponent(pattern string, catalog *Catalog) (sku string, tier MatchTier, ok bool) {
	key, ok := NormalizeIdentifier(pattern)
	if !ok {
		return "", "", false
	}

	if sku, ok := catalog.lookupExact(key); ok {
		return sku, TierExact, true
	}

	for _, comp := range catalog.Components() {
		skuUpper := strings.ToUpper(comp.InternalSKU)
		if strings.Contains(skuUpper, key) || strings.Contains(key, skuUpper) {
			return comp.InternalSKU, TierContainment, true
		}
	}

	for _, prefix := range brandPrefixes {
		if !strings.HasPrefix(key, prefix) {
			if sku, ok := catalog.lookupExact(prefix + key); ok {
				return sku, TierPrefix, true
			}
		} else if sku, ok := catalog.lookupExact(strings.TrimPrefix(key, prefix)); ok {
			return sku, TierPrefix, true
		}
	}

	return "", "", false
}
