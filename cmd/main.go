package main

import (
	"net/http"
	"reconcile-service/internal/handler"
	mid "reconcile-service/internal/middleware"
	"reconcile-service/pkg/config"
	"reconcile-service/pkg/database"
	"reconcile-service/pkg/jwtutil"
	"reconcile-service/pkg/logger"
	"reconcile-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; missing files are fine, env vars may be set by the
	// deployment environment instead
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting reconcile-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Hand the import file locations to the handlers
	handler.Init(appConfig)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Import API - triggers a catalog/listings reconciliation run
	importAPI := e.Group("/api/import", mid.AuthMiddleware)
	importAPI.POST("/run", handler.RunImport)

	// Review API - read access to the reconciled catalog
	reviewAPI := e.Group("/api", mid.AuthMiddleware)
	reviewAPI.GET("/components", handler.ListComponents)
	reviewAPI.GET("/components/:sku", handler.GetComponent)
	reviewAPI.GET("/boms", handler.ListBOMs)
	reviewAPI.GET("/boms/:sku", handler.GetBOM)
	reviewAPI.GET("/listing-memory", handler.ListListingMemory)
	reviewAPI.GET("/unmatched", handler.ListUnmatched)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
