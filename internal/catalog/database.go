package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/logger"
	"github.com/osse101/CraftingDB_Go/internal/metrics"
)

// Info summarizes the database
func (s *service) Info(_ context.Context) Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.infoLocked()
}

func (s *service) infoLocked() Info {
	return Info{
		Name:        s.db.Name(),
		Location:    s.store.Location(),
		ItemCount:   s.db.ItemCount(),
		RecipeCount: s.db.RecipeCount(),
		Autosave:    s.cfg.Autosave,
	}
}

// Snapshot returns the serializable form of the whole database
func (s *service) Snapshot(_ context.Context) crafting.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Snapshot()
}

// Rename sets the database name. Blank names fall back to the default name.
func (s *service) Rename(ctx context.Context, name string) (Info, error) {
	var info Info
	_, err := s.apply(ctx, OpRename, func(db *crafting.Database) domain.Result {
		db.Rename(name)
		info = s.infoLocked()
		return domain.Ok(db.Name())
	}, "name", name)
	return info, err
}

// Save writes the database to its store
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveLocked(ctx); err != nil {
		logger.FromContext(ctx).Error(ErrMsgSaveFailed, "location", s.store.Location(), "error", err)
		return fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}
	return nil
}

// Reload replaces the in-memory database with the stored one. Unsaved
// changes are lost. On failure the current database is kept.
func (s *service) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.store.Load(ctx)
	if err != nil {
		log.Error(ErrMsgReloadFailed, "location", s.store.Location(), "error", err)
		return fmt.Errorf("%s: %w", ErrMsgReloadFailed, err)
	}

	s.db = db
	s.resolver.Reset(db.Items())
	s.cache.purge()
	metrics.SetCatalogSize(db.ItemCount(), db.RecipeCount())

	log.Info(LogMsgReloaded, "location", s.store.Location(), "name", db.Name(),
		"items", db.ItemCount(), "recipes", db.RecipeCount())
	return nil
}

// CheckHealth reports whether the backing store is reachable
func (s *service) CheckHealth(ctx context.Context) error {
	return s.store.Ping(ctx)
}
