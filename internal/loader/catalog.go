package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"reconcile-service/internal/resolve"

	"go.uber.org/zap"
)

// CostFile points at one supplier cost export on disk. Prefix is the
// supplier tag (MAK, DEW, TIMCO) recorded as component provenance.
type CostFile struct {
	Prefix string
	Path   string
}

// brandByPrefix maps a supplier file prefix to the display brand.
var brandByPrefix = map[string]string{
	"MAK":   "Makita",
	"DEW":   "DeWalt",
	"TIMCO": "TIMCO",
}

// BrandForPrefix returns the display brand for a supplier prefix, falling
// back to "Unknown" for unmapped suppliers.
func BrandForPrefix(prefix string) string {
	if brand, ok := brandByPrefix[prefix]; ok {
		return brand
	}
	return "Unknown"
}

// LoadCatalog reads every configured cost file in order and returns the raw
// component rows. File order matters: catalog deduplication keeps the first
// occurrence of a SKU.
func LoadCatalog(files []CostFile, log *zap.Logger) ([]resolve.Component, error) {
	var all []resolve.Component
	for _, cf := range files {
		f, err := os.Open(cf.Path)
		if err != nil {
			return nil, fmt.Errorf("open cost file %s: %w", cf.Path, err)
		}
		rows, err := ReadCostRows(cf.Prefix, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read cost file %s: %w", cf.Path, err)
		}
		log.Info("Loaded supplier cost file",
			zap.String("prefix", cf.Prefix),
			zap.String("path", cf.Path),
			zap.Int("rows", len(rows)))
		all = append(all, rows...)
	}
	return all, nil
}

// ReadCostRows parses one supplier cost CSV. Expected columns (matched
// case-insensitively by header): Stock-Code, Description, Cost. Cost is in
// pounds and converted to pence; unparseable costs become 0. Rows with an
// empty stock code are skipped.
func ReadCostRows(prefix string, r io.Reader) ([]resolve.Component, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	skuCol, ok := cols["stock-code"]
	if !ok {
		return nil, fmt.Errorf("cost file for %s has no Stock-Code column", prefix)
	}
	descCol, hasDesc := cols["description"]
	costCol, hasCost := cols["cost"]

	brand := BrandForPrefix(prefix)
	var components []resolve.Component
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		sku := strings.TrimSpace(field(record, skuCol))
		if sku == "" {
			continue
		}

		desc := ""
		if hasDesc {
			desc = strings.TrimSpace(field(record, descCol))
		}
		cost := 0
		if hasCost {
			cost = poundsToPence(field(record, costCol))
		}

		components = append(components, resolve.Component{
			InternalSKU:    sku,
			Description:    desc,
			Brand:          brand,
			CostExVATPence: cost,
			IsActive:       true,
			SourceFile:     prefix,
		})
	}
	return components, nil
}

// indexColumns maps lowercased trimmed header names to their position.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// poundsToPence converts a decimal pounds amount to integer pence,
// defaulting to 0 when the value does not parse. Rounded, not truncated:
// 79.95 must become 7995 even when the float lands just below it.
func poundsToPence(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v * 100))
}
