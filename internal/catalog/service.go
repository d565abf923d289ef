// Package catalog serves one crafting database to concurrent callers. It
// adds locking, logging, metrics, a profit cache and optional autosave
// around crafting.Database.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/logger"
	"github.com/osse101/CraftingDB_Go/internal/metrics"
	"github.com/osse101/CraftingDB_Go/internal/naming"
)

// Config controls service behaviour
type Config struct {
	Autosave        bool
	DefaultName     string // name of a database created because the file is missing
	ProfitCacheSize int
	ProfitCacheTTL  time.Duration
}

// Info summarizes the loaded database
type Info struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ItemCount   int    `json:"item_count"`
	RecipeCount int    `json:"recipe_count"`
	Autosave    bool   `json:"autosave"`
}

// RecipeView is a recipe with its derived profit and one-line description
type RecipeView struct {
	Recipe      domain.RecipeRecord `json:"recipe"`
	Profit      *int                `json:"profit"` // nil when not computable
	Description string              `json:"description"`
}

// Service defines the interface for catalog operations
type Service interface {
	// Items
	ListItems(ctx context.Context) []*domain.Item
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	SearchItems(ctx context.Context, query string) []naming.Match
	ResolveItem(ctx context.Context, ref string) (string, bool)
	AddItem(ctx context.Context, item *domain.Item) (domain.Result, error)
	EditItem(ctx context.Context, id string, edit crafting.ItemEdit) (domain.Result, error)
	RemoveItem(ctx context.Context, id string, cascade bool) (domain.Result, error)

	// Recipes
	ListRecipes(ctx context.Context, key crafting.SortKey, dir crafting.SortDirection) []RecipeView
	RecipesUsing(ctx context.Context, id string) []RecipeView
	Profit(ctx context.Context, recipe *domain.Recipe) RecipeView
	Suggestions(ctx context.Context, recipe *domain.Recipe) map[string][]string
	AddRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error)
	EditRecipe(ctx context.Context, old, replacement *domain.Recipe) (domain.Result, error)
	RemoveRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error)

	// Database
	Info(ctx context.Context) Info
	Snapshot(ctx context.Context) crafting.Snapshot
	Rename(ctx context.Context, name string) (Info, error)
	Save(ctx context.Context) error
	Reload(ctx context.Context) error
	CheckHealth(ctx context.Context) error
}

type service struct {
	mu       sync.RWMutex
	db       *crafting.Database
	store    Store
	resolver naming.Resolver
	cache    *profitCache
	cfg      Config
}

// NewService wraps db. store is used by Save, Reload and autosave.
func NewService(db *crafting.Database, store Store, cfg Config) Service {
	if cfg.ProfitCacheSize <= 0 {
		cfg.ProfitCacheSize = DefaultProfitCacheSize
	}
	if cfg.ProfitCacheTTL <= 0 {
		cfg.ProfitCacheTTL = DefaultProfitCacheTTL
	}

	s := &service{
		db:       db,
		store:    store,
		resolver: naming.NewResolver(db.Items()),
		cache:    newProfitCache(cfg.ProfitCacheSize, cfg.ProfitCacheTTL),
		cfg:      cfg,
	}
	metrics.SetCatalogSize(db.ItemCount(), db.RecipeCount())
	return s
}

// Open loads the database from store. A missing file yields an empty
// database named cfg.DefaultName; it is written on the first save.
func Open(ctx context.Context, store Store, cfg Config) (Service, error) {
	log := logger.FromContext(ctx)

	db, err := store.Load(ctx)
	switch {
	case err == nil:
		log.Info(LogMsgOpened, "location", store.Location(), "name", db.Name(),
			"items", db.ItemCount(), "recipes", db.RecipeCount())
	case errors.Is(err, fs.ErrNotExist):
		log.Info(LogMsgCreatedEmpty, "location", store.Location())
		name := cfg.DefaultName
		if name == "" {
			name = crafting.DefaultName
		}
		db, err = crafting.New(crafting.WithName(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenFailed, err)
	}

	return NewService(db, store, cfg), nil
}

// apply runs a mutation under the write lock and handles the shared
// bookkeeping: logging, metrics, cache and resolver upkeep, autosave.
func (s *service) apply(ctx context.Context, op string, mutate func(db *crafting.Database) domain.Result, attrs ...any) (domain.Result, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	res := mutate(s.db)
	metrics.RecordOperation(op, res)

	if !res.OK() {
		log.Warn(LogMsgOperationRejected, append([]any{"operation", op, "reason", res.Reason, "message", res.Message}, attrs...)...)
		return res, nil
	}

	log.Info(LogMsgOperationApplied, append([]any{"operation", op, "message", res.Message}, attrs...)...)
	s.cache.purge()
	metrics.SetCatalogSize(s.db.ItemCount(), s.db.RecipeCount())

	if s.cfg.Autosave {
		if err := s.saveLocked(ctx); err != nil {
			log.Error(LogMsgAutosaveFailed, "operation", op, "error", err)
			return res, fmt.Errorf("%w: %w", ErrAutosaveFailed, err)
		}
	}
	return res, nil
}

// saveLocked writes the database; the caller holds the lock
func (s *service) saveLocked(ctx context.Context) error {
	err := s.store.Save(ctx, s.db)
	metrics.RecordSave(err)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSaved, "location", s.store.Location())
	return nil
}

// view builds a RecipeView; the caller holds at least the read lock
func (s *service) view(recipe *domain.Recipe) RecipeView {
	v := RecipeView{
		Recipe:      recipe.Record(),
		Description: s.db.Describe(recipe),
	}
	if profit, ok := s.cache.get(recipe, s.db.CalcProfit); ok {
		v.Profit = &profit
	}
	return v
}

func (s *service) views(recipes []*domain.Recipe) []RecipeView {
	out := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, s.view(r))
	}
	return out
}
