package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"reconcile-service/internal/resolve"

	"go.uber.org/zap"
)

// LoadListings reads the marketplace all-listings report from disk.
func LoadListings(path string, log *zap.Logger) ([]resolve.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open listings file %s: %w", path, err)
	}
	defer f.Close()

	listings, err := ReadListingRows(f)
	if err != nil {
		return nil, fmt.Errorf("read listings file %s: %w", path, err)
	}
	log.Info("Loaded marketplace listings",
		zap.String("path", path),
		zap.Int("rows", len(listings)))
	return listings, nil
}

// ReadListingRows parses the tab-separated marketplace report. Expected
// columns (by header): item-name, seller-sku, asin1, price, status. Rows
// with an empty name or SKU, or with status "inactive", are dropped. The
// title fingerprint and its hash are computed here so the core pipeline
// receives fully-formed listings.
func ReadListingRows(r io.Reader) ([]resolve.Listing, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	nameCol, ok := cols["item-name"]
	if !ok {
		return nil, fmt.Errorf("listings report has no item-name column")
	}
	skuCol, ok := cols["seller-sku"]
	if !ok {
		return nil, fmt.Errorf("listings report has no seller-sku column")
	}
	asinCol, hasASIN := cols["asin1"]
	priceCol, hasPrice := cols["price"]
	statusCol, hasStatus := cols["status"]

	var listings []resolve.Listing
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		itemName := strings.TrimSpace(field(record, nameCol))
		sellerSKU := strings.TrimSpace(field(record, skuCol))
		if itemName == "" || sellerSKU == "" {
			continue
		}
		if hasStatus && strings.EqualFold(strings.TrimSpace(field(record, statusCol)), "inactive") {
			continue
		}

		asin := ""
		if hasASIN {
			asin = strings.TrimSpace(field(record, asinCol))
		}
		price := 0
		if hasPrice {
			price = poundsToPence(field(record, priceCol))
		}

		fp, _ := resolve.FingerprintTitle(itemName)
		hash, _ := resolve.HashFingerprint(fp)

		listings = append(listings, resolve.Listing{
			ItemName:        itemName,
			SellerSKU:       sellerSKU,
			ASIN:            asin,
			PricePence:      price,
			Fingerprint:     fp,
			FingerprintHash: hash,
		})
	}
	return listings, nil
}
