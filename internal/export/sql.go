// Package export renders resolution results as SQL statement files and a
// manual-review report, mirroring the downstream database schema without
// talking to it directly.
package export

import (
	"fmt"
	"strings"
	"time"

	"reconcile-service/internal/resolve"
)

// escape doubles single quotes for SQL string literals.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func sqlHeader(title string, now time.Time) []string {
	return []string{
		"-- " + title,
		"-- Generated: " + now.Format(time.RFC3339),
		"",
	}
}

// ComponentsSQL renders the deduplicated catalog as an upsert statement.
// Returns "" when the catalog is empty.
func ComponentsSQL(components []resolve.Component, now time.Time) string {
	if len(components) == 0 {
		return ""
	}
	lines := sqlHeader("Components Import", now)
	lines = append(lines,
		"INSERT INTO components (internal_sku, description, brand, cost_ex_vat_pence, is_active)",
		"VALUES")

	values := make([]string, 0, len(components))
	for _, c := range components {
		values = append(values, fmt.Sprintf("  ('%s', '%s', '%s', %d, true)",
			escape(c.InternalSKU), escape(truncate(c.Description, 500)), escape(c.Brand), c.CostExVATPence))
	}
	lines = append(lines, strings.Join(values, ",\n"),
		"ON CONFLICT (internal_sku) DO UPDATE SET",
		"  description = EXCLUDED.description,",
		"  brand = EXCLUDED.brand,",
		"  cost_ex_vat_pence = EXCLUDED.cost_ex_vat_pence,",
		"  updated_at = now();")
	return strings.Join(lines, "\n")
}

// BOMsSQL renders the bundle rows as an upsert statement.
func BOMsSQL(boms []resolve.BOM, now time.Time) string {
	if len(boms) == 0 {
		return ""
	}
	lines := sqlHeader("BOMs Import", now)
	lines = append(lines,
		"INSERT INTO boms (bundle_sku, description, is_active)",
		"VALUES")

	values := make([]string, 0, len(boms))
	for _, b := range boms {
		values = append(values, fmt.Sprintf("  ('%s', '%s', true)",
			escape(b.BundleSKU), escape(b.Description)))
	}
	lines = append(lines, strings.Join(values, ",\n"),
		"ON CONFLICT (bundle_sku) DO UPDATE SET",
		"  description = EXCLUDED.description,",
		"  updated_at = now();")
	return strings.Join(lines, "\n")
}

// BOMComponentsSQL renders the component links, resolving bundle and
// component SKUs to row IDs via joins so the statement can run after the
// components and BOMs statements.
func BOMComponentsSQL(links []resolve.BOMComponentLink, now time.Time) string {
	if len(links) == 0 {
		return ""
	}
	lines := sqlHeader("BOM Components Import", now)
	lines = append(lines,
		"-- This requires BOMs and components to exist first",
		"INSERT INTO bom_components (bom_id, component_id, qty_required)",
		"SELECT b.id, c.id, v.qty_required",
		"FROM (VALUES")

	values := make([]string, 0, len(links))
	for _, l := range links {
		values = append(values, fmt.Sprintf("  ('%s', '%s', %d)",
			escape(l.BOMSKU), escape(l.ComponentSKU), l.QtyRequired))
	}
	lines = append(lines, strings.Join(values, ",\n"),
		") AS v(bom_sku, component_sku, qty_required)",
		"JOIN boms b ON b.bundle_sku = v.bom_sku",
		"JOIN components c ON c.internal_sku = v.component_sku",
		"ON CONFLICT (bom_id, component_id) DO UPDATE SET",
		"  qty_required = EXCLUDED.qty_required;")
	return strings.Join(lines, "\n")
}

// ListingMemorySQL renders the listing memory entries, linking each to its
// BOM by bundle SKU. Missing ASINs become NULL.
func ListingMemorySQL(entries []resolve.ListingMemoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return ""
	}
	lines := sqlHeader("Listing Memory Import", now)
	lines = append(lines,
		"-- Link listings to BOMs by bundle_sku",
		"INSERT INTO listing_memory (asin, sku, title_fingerprint, title_fingerprint_hash, bom_id, resolution_source, is_active)",
		"SELECT",
		"  v.asin,",
		"  v.sku,",
		"  v.title_fingerprint,",
		"  v.title_fingerprint_hash,",
		"  b.id,",
		"  'IMPORT',",
		"  true",
		"FROM (VALUES")

	values := make([]string, 0, len(entries))
	for _, e := range entries {
		asin := "NULL"
		if e.ASIN != "" {
			asin = "'" + escape(e.ASIN) + "'"
		}
		values = append(values, fmt.Sprintf("  (%s, '%s', '%s', '%s', '%s')",
			asin, escape(e.SKU), escape(e.TitleFingerprint), e.TitleFingerprintHash, escape(e.BOMSKU)))
	}
	lines = append(lines, strings.Join(values, ",\n"),
		") AS v(asin, sku, title_fingerprint, title_fingerprint_hash, bom_sku)",
		"JOIN boms b ON b.bundle_sku = v.bom_sku",
		"ON CONFLICT DO NOTHING;")
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
