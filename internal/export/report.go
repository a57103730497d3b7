package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"reconcile-service/internal/resolve"

	"go.uber.org/zap"
)

// unmatchedEntry is the review-report row shape.
type unmatchedEntry struct {
	SellerSKU string `json:"seller_sku"`
	ItemName  string `json:"item_name"`
	ASIN      string `json:"asin,omitempty"`
}

// UnmatchedJSON renders the manual-review report as indented JSON. An empty
// collection renders as an empty array, not null.
func UnmatchedJSON(unmatched []resolve.UnmatchedListing) ([]byte, error) {
	entries := make([]unmatchedEntry, 0, len(unmatched))
	for _, u := range unmatched {
		entries = append(entries, unmatchedEntry{
			SellerSKU: u.SellerSKU,
			ItemName:  u.ItemName,
			ASIN:      u.ASIN,
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}

// WriteAll writes the numbered SQL files and the unmatched report into dir,
// creating it if needed. Empty collections skip their file.
func WriteAll(dir string, catalog *resolve.Catalog, result resolve.Result, log *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	now := time.Now()

	files := []struct {
		name    string
		content string
	}{
		{"01_components.sql", ComponentsSQL(catalog.Components(), now)},
		{"02_boms.sql", BOMsSQL(result.BOMs, now)},
		{"03_bom_components.sql", BOMComponentsSQL(result.Links, now)},
		{"04_listing_memory.sql", ListingMemorySQL(result.Memory, now)},
	}
	for _, f := range files {
		if f.content == "" {
			continue
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		log.Info("Wrote SQL file", zap.String("path", path))
	}

	if len(result.Unmatched) > 0 {
		data, err := UnmatchedJSON(result.Unmatched)
		if err != nil {
			return fmt.Errorf("render unmatched report: %w", err)
		}
		path := filepath.Join(dir, "unmatched_listings.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write unmatched report: %w", err)
		}
		log.Info("Wrote unmatched report",
			zap.String("path", path),
			zap.Int("count", len(result.Unmatched)))
	}
	return nil
}
