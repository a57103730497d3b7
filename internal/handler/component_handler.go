package handler

import (
	"net/http"
	"reconcile-service/internal/model"
	"reconcile-service/pkg/database"
	"reconcile-service/pkg/logger"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListComponents handles retrieving catalog components with optional filtering
func ListComponents(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing components with filters")

	db := database.GetDB()
	var components []model.Component

	// Handle query parameters for filtering
	query := db

	// Filter by active status if specified
	isActive := c.QueryParam("is_active")
	if isActive != "" {
		active, err := strconv.ParseBool(isActive)
		if err == nil {
			query = query.Where("is_active = ?", active)
			log.Info("Filtering components by active status", zap.Bool("is_active", active))
		} else {
			log.Warn("Invalid is_active parameter", zap.String("value", isActive), zap.Error(err))
		}
	}

	// Filter by brand if specified
	brand := c.QueryParam("brand")
	if brand != "" {
		query = query.Where("brand = ?", brand)
		log.Info("Filtering components by brand", zap.String("brand", brand))
	}

	// Filter by supplier source file if specified
	sourceFile := c.QueryParam("source_file")
	if sourceFile != "" {
		query = query.Where("source_file = ?", sourceFile)
		log.Info("Filtering components by source file", zap.String("source_file", sourceFile))
	}

	// Execute the query
	result := query.Find(&components)
	if result.Error != nil {
		log.Error("Failed to list components",
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve components",
		})
	}

	log.Info("Components retrieved successfully", zap.Int("count", len(components)))
	return c.JSON(http.StatusOK, components)
}

// GetComponent handles retrieving a single component by internal SKU
func GetComponent(c echo.Context) error {
	log := logger.FromContext(c)
	sku := strings.ToUpper(c.Param("sku"))
	log.Info("Getting component by SKU", zap.String("internal_sku", sku))

	var component model.Component
	result := database.GetDB().Where("UPPER(internal_sku) = ?", sku).First(&component)
	if result.Error != nil {
		log.Error("Component not found",
			zap.String("internal_sku", sku),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Component not found",
		})
	}

	log.Info("Component retrieved successfully",
		zap.String("internal_sku", component.InternalSKU),
		zap.String("brand", component.Brand))
	return c.JSON(http.StatusOK, component)
}
