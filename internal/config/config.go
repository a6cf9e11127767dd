// Package config reads server and storage settings from COURSEFIT_*
// environment variables. LLM settings live in the llm package.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration. Command-line flags override it.
type Config struct {
	HTTPAddr       string
	CORSOrigins    []string
	RequestTimeout time.Duration
	Compress       bool

	// CatalogPath points at a catalog JSON document. Empty means the
	// published store catalog, or the built-in one.
	CatalogPath string

	DBDriver string
	DBDSN    string

	Workers int
}

// FromEnv builds a Config from the environment with defaults.
func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("COURSEFIT_HTTP_ADDR", ":8080"),
		CORSOrigins:    csvOr("COURSEFIT_CORS_ORIGINS", "*"),
		RequestTimeout: duration("COURSEFIT_REQUEST_TIMEOUT", 15*time.Second),
		Compress:       envBool("COURSEFIT_COMPRESS", true),
		CatalogPath:    os.Getenv("COURSEFIT_CATALOG"),
		DBDriver:       envOr("COURSEFIT_DB_DRIVER", "sqlite"),
		DBDSN:          os.Getenv("COURSEFIT_DB_DSN"),
		Workers:        intOr("COURSEFIT_WORKERS", 0),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// duration accepts Go duration strings; invalid or non-positive values
// fall back to def.
func duration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func intOr(k string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || n < 0 {
		return def
	}
	return n
}
