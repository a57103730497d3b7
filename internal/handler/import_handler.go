package handler

import (
	"net/http"
	"reconcile-service/internal/importer"
	"reconcile-service/pkg/config"
	"reconcile-service/pkg/database"
	"reconcile-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var appConfig *config.Config

// Init stores the loaded configuration for handlers that need file paths
func Init(cfg *config.Config) {
	appConfig = cfg
}

// RunImport triggers a full catalog import run and returns its summary
func RunImport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Import run requested")

	summary, err := importer.Run(appConfig, database.GetDB(), log)
	if err != nil {
		log.Error("Import run failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Import run failed: " + err.Error(),
		})
	}

	log.Info("Import run finished",
		zap.String("run_id", summary.RunID),
		zap.Int("boms", summary.BOMs),
		zap.Int("unmatched", summary.Unmatched))
	return c.JSON(http.StatusOK, summary)
}
