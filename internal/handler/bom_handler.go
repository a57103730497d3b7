package handler

import (
	"net/http"
	"reconcile-service/internal/model"
	"reconcile-service/pkg/database"
	"reconcile-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BOMResponse bundles a BOM row with its component links for detail views
type BOMResponse struct {
	model.BOM
	Components []model.BOMComponent `json:"components"`
}

// ListBOMs handles retrieving all bundle records
func ListBOMs(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing BOMs")

	var boms []model.BOM
	result := database.GetDB().Find(&boms)
	if result.Error != nil {
		log.Error("Failed to list BOMs", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve BOMs",
		})
	}

	log.Info("BOMs retrieved successfully", zap.Int("count", len(boms)))
	return c.JSON(http.StatusOK, boms)
}

// GetBOM handles retrieving a single bundle with its component links
func GetBOM(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	log.Info("Getting BOM by bundle SKU", zap.String("bundle_sku", sku))

	var bom model.BOM
	result := database.GetDB().Where("bundle_sku = ?", sku).First(&bom)
	if result.Error != nil {
		log.Error("BOM not found",
			zap.String("bundle_sku", sku),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "BOM not found",
		})
	}

	var components []model.BOMComponent
	result = database.GetDB().Where("bom_sku = ?", bom.BundleSKU).Find(&components)
	if result.Error != nil {
		log.Error("Failed to load BOM components",
			zap.String("bundle_sku", sku),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve BOM components",
		})
	}

	log.Info("BOM retrieved successfully",
		zap.String("bundle_sku", bom.BundleSKU),
		zap.Int("component_count", len(components)))
	return c.JSON(http.StatusOK, BOMResponse{BOM: bom, Components: components})
}

// ListUnmatched handles retrieving the manual-review queue from the most
// recent import run
func ListUnmatched(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing unmatched listings")

	var unmatched []model.UnmatchedListing
	result := database.GetDB().Order("id").Find(&unmatched)
	if result.Error != nil {
		log.Error("Failed to list unmatched listings", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve unmatched listings",
		})
	}

	log.Info("Unmatched listings retrieved successfully", zap.Int("count", len(unmatched)))
	return c.JSON(http.StatusOK, unmatched)
}

// ListListingMemory handles retrieving listing memory entries, optionally
// filtered by fingerprint hash for exact title lookups
func ListListingMemory(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing memory entries")

	query := database.GetDB()
	if hash := c.QueryParam("fingerprint_hash"); hash != "" {
		query = query.Where("title_fingerprint_hash = ?", hash)
		log.Info("Filtering listing memory by fingerprint hash", zap.String("fingerprint_hash", hash))
	}

	var entries []model.ListingMemory
	result := query.Find(&entries)
	if result.Error != nil {
		log.Error("Failed to list memory entries", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve listing memory",
		})
	}

	log.Info("Listing memory retrieved successfully", zap.Int("count", len(entries)))
	return c.JSON(http.StatusOK, entries)
}
