package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ericfisherdev/shopfront/internal/adapter/driven/catalog"
	"github.com/ericfisherdev/shopfront/internal/adapter/driven/memory"
	sqliteadapter "github.com/ericfisherdev/shopfront/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/shopfront/internal/config"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

// newLogger builds the slog logger. When cfg.LogFile is set, records go to
// that file; otherwise they go to fallback. The returned func closes the file.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), closeFn, nil
}

// newCredentialStore opens the configured directory backend. Both backends
// are process-local; the SQLite one is an in-memory database with a unique
// name per run.
func newCredentialStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (driven.CredentialStore, func(), error) {
	switch cfg.Directory {
	case model.DirectoryBackendSQLite:
		name := "shopfront-" + uuid.NewString()
		db, err := sqliteadapter.NewDB(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("credential directory ready", "backend", cfg.Directory, "db", name)

		closeFn := func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}
		return sqliteadapter.NewCredentialRepo(db), closeFn, nil

	default:
		logger.Info("credential directory ready", "backend", model.DirectoryBackendMemory)
		return memory.NewCredentialStore(), func() {}, nil
	}
}

// newProductSource loads the catalog file if configured, else the embedded one.
func newProductSource(cfg *config.Config) (driven.ProductSource, error) {
	if cfg.HasCatalogOverride() {
		return catalog.NewFileSource(cfg.CatalogPath)
	}
	return catalog.NewDefaultSource()
}
