package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/config"
	"github.com/osse101/CraftingDB_Go/internal/validation"
)

// CatalogConfig maps the application config onto catalog.Config
func CatalogConfig(cfg *config.Config) catalog.Config {
	return catalog.Config{
		Autosave:        cfg.Autosave,
		DefaultName:     cfg.DatabaseName,
		ProfitCacheSize: cfg.ProfitCacheSize,
		ProfitCacheTTL:  cfg.ProfitCacheTTL,
	}
}

// NewStore builds the file store for path. With StrictLoad the file is
// schema-checked on every load.
func NewStore(cfg *config.Config, path string) catalog.Store {
	var validator validation.SchemaValidator
	if cfg.StrictLoad {
		validator = validation.NewSchemaValidator()
	}
	return catalog.NewFileStore(path, validator)
}

// OpenCatalog loads the database at path (cfg.DatabaseFile when empty) and
// wraps it in a catalog service. A missing file starts an empty database.
func OpenCatalog(ctx context.Context, cfg *config.Config, path string) (catalog.Service, error) {
	if path == "" {
		path = cfg.DatabaseFile
	}

	slog.Info(LogMsgOpeningDatabase, "path", path)
	if cfg.StrictLoad {
		slog.Info(LogMsgStrictLoad, "path", path)
	}

	svc, err := catalog.Open(ctx, NewStore(cfg, path), CatalogConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
	}

	info := svc.Info(ctx)
	slog.Info(LogMsgDatabaseReady,
		"name", info.Name,
		"items", info.ItemCount,
		"recipes", info.RecipeCount,
		"autosave", info.Autosave)

	return svc, nil
}
