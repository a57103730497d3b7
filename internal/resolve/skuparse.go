package resolve

import (
	"regexp"
	"strconv"
	"strings"
)

// ComponentRef is one constituent of a compound seller SKU: the raw pattern
// to match against the catalog and how many units the bundle needs.
type ComponentRef struct {
	Pattern  string
	Quantity int
}

var (
	skuJoiner = regexp.MustCompile(`[+/]`)
	qtyPrefix = regexp.MustCompile(`(?i)^(\d+)x(.+)$`)
	qtySuffix = regexp.MustCompile(`(?i)^(.+)\(x(\d+)\)$`)
)

// ParseCompoundSKU decomposes a seller SKU like "MAKDJR186+2xBL1850+DC18RC(x3)"
// into its component references. Segments are joined by '+' or '/'; a
// quantity is read from a "2x..." prefix or a "...(x2)" suffix, defaulting
// to 1. Empty segments are dropped, order is preserved.
func ParseCompoundSKU(sku string) []ComponentRef {
	if strings.TrimSpace(sku) == "" {
		return nil
	}

	var refs []ComponentRef
	for _, part := range skuJoiner.Split(sku, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := qtyPrefix.FindStringSubmatch(part); m != nil {
			qty, err := strconv.Atoi(m[1])
			if err == nil {
				refs = append(refs, ComponentRef{Pattern: strings.TrimSpace(m[2]), Quantity: qty})
				continue
			}
		}
		if m := qtySuffix.FindStringSubmatch(part); m != nil {
			qty, err := strconv.Atoi(m[2])
			if err == nil {
				refs = append(refs, ComponentRef{Pattern: strings.TrimSpace(m[1]), Quantity: qty})
				continue
			}
		}
		refs = append(refs, ComponentRef{Pattern: part, Quantity: 1})
	}
	return refs
}
