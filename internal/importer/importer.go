// Package importer drives one catalog import run: load the supplier cost
// files and the marketplace listing feed, resolve listings against the
// catalog, persist the results, and write the SQL/review files the
// downstream database process consumes.
package importer

import (
	"fmt"
	"time"

	"reconcile-service/internal/export"
	"reconcile-service/internal/loader"
	"reconcile-service/internal/model"
	"reconcile-service/internal/resolve"
	"reconcile-service/pkg/config"
	"reconcile-service/prometheus"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const persistBatchSize = 500

// Summary reports what one import run produced.
type Summary struct {
	RunID             string    `json:"run_id"`
	StartedAt         time.Time `json:"started_at"`
	DurationSeconds   float64   `json:"duration_seconds"`
	ComponentsLoaded  int       `json:"components_loaded"`
	ComponentsUnique  int       `json:"components_unique"`
	DuplicatesDropped int       `json:"duplicates_dropped"`
	Listings          int       `json:"listings"`
	BOMs              int       `json:"boms"`
	ComponentLinks    int       `json:"component_links"`
	MemoryEntries     int       `json:"memory_entries"`
	Unmatched         int       `json:"unmatched"`
}

// Run executes a full import. The pipeline itself is pure; everything
// stateful (files, database, metrics) happens here.
func Run(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))
	log.Info("Starting catalog import run")

	costFiles := make([]loader.CostFile, 0, len(cfg.Import.CostFiles))
	for _, cf := range cfg.Import.CostFiles {
		costFiles = append(costFiles, loader.CostFile{Prefix: cf.Prefix, Path: cf.Path})
	}

	rawComponents, err := loader.LoadCatalog(costFiles, log)
	if err != nil {
		prometheus.RecordImportRun("error", start)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	listings, err := loader.LoadListings(cfg.Import.ListingsFile, log)
	if err != nil {
		prometheus.RecordImportRun("error", start)
		return nil, fmt.Errorf("load listings: %w", err)
	}

	catalog := resolve.NewCatalog(rawComponents)
	log.Info("Catalog deduplicated",
		zap.Int("loaded", len(rawComponents)),
		zap.Int("unique", catalog.Len()),
		zap.Int("duplicates_dropped", catalog.Duplicates()))

	result := resolve.Resolve(listings, catalog)

	prometheus.CatalogComponentsGauge.Set(float64(catalog.Len()))
	prometheus.ListingsProcessed.Add(float64(len(listings)))
	prometheus.UnmatchedListings.Add(float64(len(result.Unmatched)))
	for _, link := range result.Links {
		prometheus.RecordComponentMatch(string(link.Tier))
	}

	if err := persist(db, runID, catalog, result); err != nil {
		prometheus.RecordImportRun("error", start)
		return nil, fmt.Errorf("persist results: %w", err)
	}

	if err := export.WriteAll(cfg.Import.OutputDir, catalog, result, log); err != nil {
		prometheus.RecordImportRun("error", start)
		return nil, fmt.Errorf("write output files: %w", err)
	}

	prometheus.RecordImportRun("success", start)

	summary := &Summary{
		RunID:             runID,
		StartedAt:         start,
		DurationSeconds:   time.Since(start).Seconds(),
		ComponentsLoaded:  len(rawComponents),
		ComponentsUnique:  catalog.Len(),
		DuplicatesDropped: catalog.Duplicates(),
		Listings:          len(listings),
		BOMs:              len(result.BOMs),
		ComponentLinks:    len(result.Links),
		MemoryEntries:     len(result.Memory),
		Unmatched:         len(result.Unmatched),
	}
	log.Info("Import run complete",
		zap.Int("components_unique", summary.ComponentsUnique),
		zap.Int("listings", summary.Listings),
		zap.Int("component_links", summary.ComponentLinks),
		zap.Int("unmatched", summary.Unmatched),
		zap.Float64("duration_seconds", summary.DurationSeconds))
	return summary, nil
}

// persist upserts all four collections in one transaction. Components and
// BOMs update in place on conflict, links update their quantity, memory
// entries are insert-only, and the unmatched review table is refreshed with
// the current run's rows.
func persist(db *gorm.DB, runID string, catalog *resolve.Catalog, result resolve.Result) error {
	return db.Transaction(func(tx *gorm.DB) error {
		defer prometheus.TrackDBOperation("import_persist")(time.Now())

		if comps := componentRows(catalog.Components()); len(comps) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "internal_sku"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"description", "brand", "cost_ex_vat_pence", "updated_at",
				}),
			}).CreateInBatches(comps, persistBatchSize).Error
			if err != nil {
				return fmt.Errorf("upsert components: %w", err)
			}
		}

		// Postgres rejects an upsert batch that touches the same conflict
		// key twice, so duplicate bundle or (bundle, component) rows are
		// collapsed here, last occurrence winning. The in-memory result
		// keeps the duplicates; only persistence flattens them.
		if boms := dedupeLast(bomRows(result.BOMs), func(b model.BOM) string {
			return b.BundleSKU
		}); len(boms) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "bundle_sku"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "updated_at"}),
			}).CreateInBatches(boms, persistBatchSize).Error
			if err != nil {
				return fmt.Errorf("upsert boms: %w", err)
			}
		}

		if links := dedupeLast(linkRows(result.Links), func(l model.BOMComponent) string {
			return l.BOMSKU + "\x00" + l.ComponentSKU
		}); len(links) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "bom_sku"}, {Name: "component_sku"}},
				DoUpdates: clause.AssignmentColumns([]string{"qty_required", "match_tier", "updated_at"}),
			}).CreateInBatches(links, persistBatchSize).Error
			if err != nil {
				return fmt.Errorf("upsert bom components: %w", err)
			}
		}

		if entries := memoryRows(result.Memory); len(entries) > 0 {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(entries, persistBatchSize).Error
			if err != nil {
				return fmt.Errorf("insert listing memory: %w", err)
			}
		}

		// The unmatched table only ever reflects the latest run.
		if err := tx.Where("1 = 1").Delete(&model.UnmatchedListing{}).Error; err != nil {
			return fmt.Errorf("clear unmatched listings: %w", err)
		}
		if rows := unmatchedRows(runID, result.Unmatched); len(rows) > 0 {
			if err := tx.CreateInBatches(rows, persistBatchSize).Error; err != nil {
				return fmt.Errorf("insert unmatched listings: %w", err)
			}
		}

		return nil
	})
}

// dedupeLast keeps one row per key, the last one seen, preserving the
// order of last occurrences.
func dedupeLast[T any](rows []T, key func(T) string) []T {
	byKey := make(map[string]T, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = row
	}
	out := make([]T, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

func componentRows(components []resolve.Component) []model.Component {
	rows := make([]model.Component, 0, len(components))
	for _, c := range components {
		rows = append(rows, model.Component{
			InternalSKU:    c.InternalSKU,
			Description:    c.Description,
			Brand:          c.Brand,
			CostExVATPence: c.CostExVATPence,
			IsActive:       c.IsActive,
			SourceFile:     c.SourceFile,
		})
	}
	return rows
}

func bomRows(boms []resolve.BOM) []model.BOM {
	rows := make([]model.BOM, 0, len(boms))
	for _, b := range boms {
		rows = append(rows, model.BOM{
			BundleSKU:   b.BundleSKU,
			Description: b.Description,
			IsActive:    b.IsActive,
		})
	}
	return rows
}

func linkRows(links []resolve.BOMComponentLink) []model.BOMComponent {
	rows := make([]model.BOMComponent, 0, len(links))
	for _, l := range links {
		rows = append(rows, model.BOMComponent{
			BOMSKU:       l.BOMSKU,
			ComponentSKU: l.ComponentSKU,
			QtyRequired:  l.QtyRequired,
			MatchTier:    string(l.Tier),
		})
	}
	return rows
}

func memoryRows(entries []resolve.ListingMemoryEntry) []model.ListingMemory {
	rows := make([]model.ListingMemory, 0, len(entries))
	for _, e := range entries {
		var asin *string
		if e.ASIN != "" {
			a := e.ASIN
			asin = &a
		}
		rows = append(rows, model.ListingMemory{
			ASIN:                 asin,
			SKU:                  e.SKU,
			TitleFingerprint:     e.TitleFingerprint,
			TitleFingerprintHash: e.TitleFingerprintHash,
			BOMSKU:               e.BOMSKU,
			ResolutionSource:     e.ResolutionSource,
			IsActive:             true,
		})
	}
	return rows
}

func unmatchedRows(runID string, unmatched []resolve.UnmatchedListing) []model.UnmatchedListing {
	rows := make([]model.UnmatchedListing, 0, len(unmatched))
	for _, u := range unmatched {
		rows = append(rows, model.UnmatchedListing{
			SellerSKU: u.SellerSKU,
			ItemName:  u.ItemName,
			ASIN:      u.ASIN,
			RunID:     runID,
		})
	}
	return rows
}
