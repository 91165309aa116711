package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/nomina/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Nomina", cfg.App.Name)
	assert.Equal(t, "nomina", cfg.DB.Name)
	assert.Equal(t, time.Hour, cfg.Payroll.ReconcileInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "payroll")
	t.Setenv("PAYROLL_RECONCILE_INTERVAL", "15m")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Payroll.ReconcileInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres://postgres:@db:5432/payroll?sslmode=disable", cfg.ConnectionString())
}

func TestConfig_DatabaseOptions(t *testing.T) {
	t.Setenv("APP_NAME", "nomina-api")
	t.Setenv("DB_MAX_OPEN_CONNS", "10")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")

	cfg, err := config.Load()
	require.NoError(t, err)

	opts := cfg.DatabaseOptions()
	assert.Equal(t, "nomina-api", opts.AppName)
	assert.Equal(t, "America/Bogota", opts.TimeZone)
	assert.Equal(t, 10, opts.MaxOpenConns)
	assert.Equal(t, 5, opts.MaxIdleConns)
	assert.Equal(t, time.Minute, opts.ConnMaxLifetime)
}
