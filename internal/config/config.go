// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Directory   model.DirectoryBackend
	LogLevel    slog.Level
	LogFile     string
	CatalogPath string
	NoColor     bool
}

// HasCatalogOverride returns true when a catalog file replaces the embedded one.
func (c *Config) HasCatalogOverride() bool {
	return c.CatalogPath != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: SHOPFRONT_DIRECTORY (memory), SHOPFRONT_LOG_LEVEL (info),
// SHOPFRONT_LOG_FILE (unset), SHOPFRONT_CATALOG_PATH (embedded catalog),
// SHOPFRONT_NO_COLOR (false).
func Load() (*Config, error) {
	directory := model.DirectoryBackendMemory
	if v, ok := os.LookupEnv("SHOPFRONT_DIRECTORY"); ok && v != "" {
		switch backend := model.DirectoryBackend(strings.ToLower(strings.TrimSpace(v))); backend {
		case model.DirectoryBackendMemory, model.DirectoryBackendSQLite:
			directory = backend
		default:
			return nil, fmt.Errorf("SHOPFRONT_DIRECTORY must be %q or %q, got %q",
				model.DirectoryBackendMemory, model.DirectoryBackendSQLite, v)
		}
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("SHOPFRONT_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("SHOPFRONT_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	noColor := false
	if v, ok := os.LookupEnv("SHOPFRONT_NO_COLOR"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SHOPFRONT_NO_COLOR has invalid boolean %q: %w", v, err)
		}
		noColor = parsed
	}

	return &Config{
		Directory:   directory,
		LogLevel:    logLevel,
		LogFile:     os.Getenv("SHOPFRONT_LOG_FILE"),
		CatalogPath: os.Getenv("SHOPFRONT_CATALOG_PATH"),
		NoColor:     noColor,
	}, nil
}
