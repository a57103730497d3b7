// Package resolve implements the reconciliation pipeline between the
// supplier component catalog and the marketplace listing feed: identifier
// and title normalization, compound SKU decomposition, tiered component
// matching, and aggregation into BOM, listing-memory and unmatched record
// sets. Everything in this package is pure and performs no I/O.
package resolve

// Component is one canonical supplier catalog entry, as loaded from a cost
// file. CostExVATPence is the supplier cost in currency minor units.
type Component struct {
	InternalSKU    string
	Description    string
	Brand          string
	CostExVATPence int
	IsActive       bool
	SourceFile     string
}

// Catalog is a deduplicated, order-preserving component index. Matching is
// first-hit in iteration order, so insertion order is part of the contract.
// Duplicate SKUs (compared uppercased) keep the first occurrence; later rows
// are discarded, not merged.
type Catalog struct {
	components []Component
	bySKU      map[string]int
	duplicates int
}

// NewCatalog builds the index from raw catalog rows. Rows with an empty
// internal SKU are skipped.
func NewCatalog(components []Component) *Catalog {
	c := &Catalog{bySKU: make(map[string]int, len(components))}
	for _, comp := range components {
		key, ok := NormalizeIdentifier(comp.InternalSKU)
		if !ok {
			continue
		}
		if _, seen := c.bySKU[key]; seen {
			c.duplicates++
			continue
		}
		c.bySKU[key] = len(c.components)
		c.components = append(c.components, comp)
	}
	return c
}

// Components returns the deduplicated entries in insertion order. The slice
// is shared; callers must not mutate it.
func (c *Catalog) Components() []Component {
	return c.components
}

// Len is the number of unique components in the index.
func (c *Catalog) Len() int {
	return len(c.components)
}

// Duplicates is the number of rows discarded during deduplication.
func (c *Catalog) Duplicates() int {
	return c.duplicates
}

// lookupExact returns the stored internal SKU for an already-normalized key.
func (c *Catalog) lookupExact(key string) (string, bool) {
	if i, ok := c.bySKU[key]; ok {
		return c.components[i].InternalSKU, true
	}
	return "", false
}
