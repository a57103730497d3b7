package resolve

import "strings"

// ResolutionSourceImport tags listing memory entries created by a bulk
// catalog import, as opposed to entries learned at order time.
const ResolutionSourceImport = "IMPORT"

// maxDescriptionLen caps BOM descriptions taken from listing titles.
const maxDescriptionLen = 500

// minOverlapDescriptionLen guards the title-overlap fallback against short,
// generic descriptions matching everything.
const minOverlapDescriptionLen = 10

// Listing is one marketplace feed row after upstream filtering (non-empty
// title and SKU, active status).
type Listing struct {
	ItemName        string
	SellerSKU       string
	ASIN            string
	PricePence      int
	Fingerprint     string
	FingerprintHash string
}

// BOM is the bundle record emitted for every processed listing.
type BOM struct {
	BundleSKU   string
	Description string
	IsActive    bool
}

// BOMComponentLink ties one matched component into a bundle. QtyRequired is
// the decomposition quantity; duplicate (bundle, component) rows are
// possible when a SKU repeats a component and are left to the writer.
type BOMComponentLink struct {
	BOMSKU       string
	ComponentSKU string
	QtyRequired  int
	Tier         MatchTier
}

// ListingMemoryEntry records how a listing resolved to a BOM. One entry is
// created per listing regardless of match success, linked by BOMSKU ==
// the listing's seller SKU.
type ListingMemoryEntry struct {
	ASIN                 string
	SKU                  string
	TitleFingerprint     string
	TitleFingerprintHash string
	BOMSKU               string
	ResolutionSource     string
}

// UnmatchedListing flags a listing for manual review: no component could be
// matched by any tier or by the title fallback.
type UnmatchedListing struct {
	SellerSKU string
	ItemName  string
	ASIN      string
}

// Result holds the four output collections of one resolution pass, in
// listing order.
type Result struct {
	BOMs      []BOM
	Links     []BOMComponentLink
	Memory    []ListingMemoryEntry
	Unmatched []UnmatchedListing
}

// Resolve runs the full pipeline over an already-deduplicated catalog:
// every listing yields exactly one BOM and one memory entry, plus either
// one or more component links or a single unmatched record, never both.
func Resolve(listings []Listing, catalog *Catalog) Result {
	var res Result
	for _, listing := range listings {
		res = resolveOne(res, catalog, listing)
	}
	return res
}

type componentMatch struct {
	sku  string
	qty  int
	tier MatchTier
}

// resolveOne is the reduction step: it folds a single listing into the
// accumulated result.
func resolveOne(acc Result, catalog *Catalog, listing Listing) Result {
	var matches []componentMatch
	for _, ref := range ParseCompoundSKU(listing.SellerSKU) {
		if sku, tier, ok := MatchComponent(ref.Pattern, catalog); ok {
			matches = append(matches, componentMatch{sku: sku, qty: ref.Quantity, tier: tier})
		}
	}

	// No component matched via the SKU: fall back to a single title-overlap
	// scan and treat the listing as a one-component bundle.
	if len(matches) == 0 {
		if sku, ok := matchTitleOverlap(listing.ItemName, catalog); ok {
			matches = append(matches, componentMatch{sku: sku, qty: 1, tier: TierTitle})
		}
	}

	acc.BOMs = append(acc.BOMs, BOM{
		BundleSKU:   listing.SellerSKU,
		Description: truncate(listing.ItemName, maxDescriptionLen),
		IsActive:    true,
	})

	for _, m := range matches {
		acc.Links = append(acc.Links, BOMComponentLink{
			BOMSKU:       listing.SellerSKU,
			ComponentSKU: m.sku,
			QtyRequired:  m.qty,
			Tier:         m.tier,
		})
	}

	if len(matches) == 0 {
		acc.Unmatched = append(acc.Unmatched, UnmatchedListing{
			SellerSKU: listing.SellerSKU,
			ItemName:  listing.ItemName,
			ASIN:      listing.ASIN,
		})
	}

	acc.Memory = append(acc.Memory, ListingMemoryEntry{
		ASIN:                 listing.ASIN,
		SKU:                  listing.SellerSKU,
		TitleFingerprint:     listing.Fingerprint,
		TitleFingerprintHash: listing.FingerprintHash,
		BOMSKU:               listing.SellerSKU,
		ResolutionSource:     ResolutionSourceImport,
	})

	return acc
}

// matchTitleOverlap accepts the first catalog component whose description
// contains the listing title or vice versa. Descriptions of ten characters
// or fewer are skipped.
func matchTitleOverlap(itemName string, catalog *Catalog) (string, bool) {
	if itemName == "" {
		return "", false
	}
	title := strings.ToUpper(itemName)
	for _, comp := range catalog.Components() {
		if comp.Description == "" {
			continue
		}
		desc := strings.ToUpper(comp.Description)
		if len(desc) > minOverlapDescriptionLen &&
			(strings.Contains(desc, title) || strings.Contains(title, desc)) {
			return comp.InternalSKU, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
