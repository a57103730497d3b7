package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(skus ...string) *Catalog {
	comps := make([]Component, 0, len(skus))
	for _, sku := range skus {
		comps = append(comps, Component{InternalSKU: sku, IsActive: true})
	}
	return NewCatalog(comps)
}

func TestCatalogDedupFirstWins(t *testing.T) {
	catalog := NewCatalog([]Component{
		{InternalSKU: "ABC", CostExVATPence: 100},
		{InternalSKU: "abc", CostExVATPence: 999},
		{InternalSKU: "DEF", CostExVATPence: 50},
	})

	require.Equal(t, 2, catalog.Len())
	assert.Equal(t, 1, catalog.Duplicates())
	assert.Equal(t, 100, catalog.Components()[0].CostExVATPence)
}

func TestCatalogSkipsEmptySKUs(t *testing.T) {
	catalog := NewCatalog([]Component{
		{InternalSKU: "  "},
		{InternalSKU: "ABC"},
	})
	assert.Equal(t, 1, catalog.Len())
	assert.Equal(t, 0, catalog.Duplicates())
}

func TestMatchComponentExact(t *testing.T) {
	catalog := testCatalog("MAKDJR186", "BL1850")

	sku, tier, ok := MatchComponent("bl1850", catalog)
	require.True(t, ok)
	assert.Equal(t, "BL1850", sku)
	assert.Equal(t, TierExact, tier)
}

func TestMatchComponentExactBeatsContainment(t *testing.T) {
	// DCB exists both as its own entry and embedded in DEWDCB; the exact
	// entry must win even though DEWDCB appears first in iteration order.
	catalog := testCatalog("DEWDCB", "DCB")

	sku, tier, ok := MatchComponent("DCB", catalog)
	require.True(t, ok)
	assert.Equal(t, "DCB", sku)
	assert.Equal(t, TierExact, tier)
}

func TestMatchComponentContainment(t *testing.T) {
	catalog := testCatalog("DEWDCB184", "MAKBL1850")

	// Pattern contained in a catalog SKU.
	sku, tier, ok := MatchComponent("DCB184", catalog)
	require.True(t, ok)
	assert.Equal(t, "DEWDCB184", sku)
	assert.Equal(t, TierContainment, tier)

	// Catalog SKU contained in the pattern.
	sku, tier, ok = MatchComponent("MAKBL1850B-2", catalog)
	require.True(t, ok)
	assert.Equal(t, "MAKBL1850", sku)
	assert.Equal(t, TierContainment, tier)
}

func TestMatchComponentContainmentFirstHit(t *testing.T) {
	// Both entries contain the pattern; iteration order decides.
	catalog := testCatalog("XDCB184A", "YDCB184B")

	sku, _, ok := MatchComponent("DCB184", catalog)
	require.True(t, ok)
	assert.Equal(t, "XDCB184A", sku)
}

func TestMatchComponentUnprefixedPatternFindsBrandedSKU(t *testing.T) {
	// The catalog carries the brand prefix, the listing pattern does not.
	catalog := testCatalog("MAKDJR186Z")

	sku, _, ok := MatchComponent("DJR186Z", catalog)
	require.True(t, ok)
	assert.Equal(t, "MAKDJR186Z", sku)
}

func TestMatchComponentBrandedPatternFindsUnprefixedSKU(t *testing.T) {
	// The listing pattern carries the brand prefix, the catalog does not.
	catalog := testCatalog("DJR186Z")

	sku, _, ok := MatchComponent("MAKITADJR186Z", catalog)
	require.True(t, ok)
	assert.Equal(t, "DJR186Z", sku)
}

func TestMatchComponentNoMatch(t *testing.T) {
	catalog := testCatalog("MAKDJR186", "BL1850")

	_, _, ok := MatchComponent("ZZZ999", catalog)
	assert.False(t, ok)

	_, _, ok = MatchComponent("", catalog)
	assert.False(t, ok)
}
