package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8086", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "reconcile_db", cfg.DB.Name)
	assert.Equal(t, "reconcile", cfg.Metrics.Prefix)
	assert.Equal(t, "output", cfg.Import.OutputDir)

	require.Len(t, cfg.Import.CostFiles, 3)
	assert.Equal(t, "MAK", cfg.Import.CostFiles[0].Prefix)
	assert.Equal(t, "DEW", cfg.Import.CostFiles[1].Prefix)
	assert.Equal(t, "TIMCO", cfg.Import.CostFiles[2].Prefix)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_IDLE_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("IMPORT_LISTINGS_FILE", "/tmp/listings.txt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "/tmp/listings.txt", cfg.Import.ListingsFile)
}

func TestLoadCostFilesFromEnv(t *testing.T) {
	t.Setenv("IMPORT_COST_FILES", "MAK=/data/mak.csv, BOSCH=/data/bosch.csv ,broken-entry,=nopath")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Import.CostFiles, 2)
	assert.Equal(t, CostFileConfig{Prefix: "MAK", Path: "/data/mak.csv"}, cfg.Import.CostFiles[0])
	assert.Equal(t, CostFileConfig{Prefix: "BOSCH", Path: "/data/bosch.csv"}, cfg.Import.CostFiles[1])
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		Name: "reconcile_db", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=reconcile_db sslmode=disable",
		db.GetDSN())
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
}
