package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var keys = []string{
	"COURSEFIT_HTTP_ADDR", "COURSEFIT_CORS_ORIGINS", "COURSEFIT_REQUEST_TIMEOUT",
	"COURSEFIT_COMPRESS", "COURSEFIT_CATALOG", "COURSEFIT_DB_DRIVER",
	"COURSEFIT_DB_DSN", "COURSEFIT_WORKERS",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Compress)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Empty(t, cfg.DBDSN)
	assert.Empty(t, cfg.CatalogPath)
	assert.Zero(t, cfg.Workers)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSEFIT_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("COURSEFIT_CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("COURSEFIT_REQUEST_TIMEOUT", "2m")
	t.Setenv("COURSEFIT_COMPRESS", "off")
	t.Setenv("COURSEFIT_DB_DRIVER", "postgres")
	t.Setenv("COURSEFIT_DB_DSN", "postgres://localhost/coursefit")
	t.Setenv("COURSEFIT_CATALOG", "/etc/coursefit/catalog.json")
	t.Setenv("COURSEFIT_WORKERS", "8")

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.False(t, cfg.Compress)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/coursefit", cfg.DBDSN)
	assert.Equal(t, "/etc/coursefit/catalog.json", cfg.CatalogPath)
	assert.Equal(t, 8, cfg.Workers)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSEFIT_REQUEST_TIMEOUT", "soon")
	t.Setenv("COURSEFIT_COMPRESS", "maybe")
	t.Setenv("COURSEFIT_WORKERS", "-3")

	cfg := FromEnv()
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Compress)
	assert.Zero(t, cfg.Workers)
}
