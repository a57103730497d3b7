package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"reconcile-service/internal/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)

func TestComponentsSQL(t *testing.T) {
	sql := ComponentsSQL([]resolve.Component{
		{InternalSKU: "MAKDJR186Z", Description: "Makita 18V Recip Saw", Brand: "Makita", CostExVATPence: 7995},
		{InternalSKU: "BL1850", Description: "O'Brien's Battery", Brand: "Makita", CostExVATPence: 4250},
	}, testTime)

	assert.Contains(t, sql, "INSERT INTO components (internal_sku, description, brand, cost_ex_vat_pence, is_active)")
	assert.Contains(t, sql, "('MAKDJR186Z', 'Makita 18V Recip Saw', 'Makita', 7995, true)")
	assert.Contains(t, sql, "ON CONFLICT (internal_sku) DO UPDATE SET")
	// Single quotes are doubled.
	assert.Contains(t, sql, "O''Brien''s Battery")
}

func TestComponentsSQLEmpty(t *testing.T) {
	assert.Equal(t, "", ComponentsSQL(nil, testTime))
}

func TestBOMsSQL(t *testing.T) {
	sql := BOMsSQL([]resolve.BOM{
		{BundleSKU: "MAKDJR186+2xBL1850", Description: "Saw with Batteries", IsActive: true},
	}, testTime)

	assert.Contains(t, sql, "INSERT INTO boms (bundle_sku, description, is_active)")
	assert.Contains(t, sql, "('MAKDJR186+2xBL1850', 'Saw with Batteries', true)")
	assert.Contains(t, sql, "ON CONFLICT (bundle_sku) DO UPDATE SET")
}

func TestBOMComponentsSQL(t *testing.T) {
	sql := BOMComponentsSQL([]resolve.BOMComponentLink{
		{BOMSKU: "BUNDLE-1", ComponentSKU: "BL1850", QtyRequired: 2},
	}, testTime)

	assert.Contains(t, sql, "SELECT b.id, c.id, v.qty_required")
	assert.Contains(t, sql, "('BUNDLE-1', 'BL1850', 2)")
	assert.Contains(t, sql, "JOIN boms b ON b.bundle_sku = v.bom_sku")
	assert.Contains(t, sql, "JOIN components c ON c.internal_sku = v.component_sku")
	assert.Contains(t, sql, "ON CONFLICT (bom_id, component_id) DO UPDATE SET")
}

func TestListingMemorySQL(t *testing.T) {
	sql := ListingMemorySQL([]resolve.ListingMemoryEntry{
		{ASIN: "B000ABC123", SKU: "SKU-1", TitleFingerprint: "makita saw", TitleFingerprintHash: "deadbeef", BOMSKU: "SKU-1", ResolutionSource: resolve.ResolutionSourceImport},
		{ASIN: "", SKU: "SKU-2", TitleFingerprint: "dewalt drill", TitleFingerprintHash: "cafef00d", BOMSKU: "SKU-2", ResolutionSource: resolve.ResolutionSourceImport},
	}, testTime)

	assert.Contains(t, sql, "INSERT INTO listing_memory (asin, sku, title_fingerprint, title_fingerprint_hash, bom_id, resolution_source, is_active)")
	assert.Contains(t, sql, "('B000ABC123', 'SKU-1', 'makita saw', 'deadbeef', 'SKU-1')")
	// Missing ASIN renders as SQL NULL.
	assert.Contains(t, sql, "(NULL, 'SKU-2', 'dewalt drill', 'cafef00d', 'SKU-2')")
	assert.Contains(t, sql, "ON CONFLICT DO NOTHING;")
}

func TestUnmatchedJSON(t *testing.T) {
	data, err := UnmatchedJSON([]resolve.UnmatchedListing{
		{SellerSKU: "ZZZ999", ItemName: "Mystery Item", ASIN: "B000XYZ789"},
	})
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ZZZ999", entries[0]["seller_sku"])
	assert.Equal(t, "Mystery Item", entries[0]["item_name"])
	assert.Equal(t, "B000XYZ789", entries[0]["asin"])
}

func TestUnmatchedJSONEmptyIsArray(t *testing.T) {
	data, err := UnmatchedJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}
