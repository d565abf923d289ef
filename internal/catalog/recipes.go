package catalog

import (
	"context"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// ListRecipes returns every recipe in the requested order with its profit
func (s *service) ListRecipes(_ context.Context, key crafting.SortKey, dir crafting.SortDirection) []RecipeView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views(s.db.SortedRecipes(key, dir))
}

// RecipesUsing returns the recipes that consume or produce id, in stored order
func (s *service) RecipesUsing(_ context.Context, id string) []RecipeView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views(s.db.RecipesUsing(id))
}

// Profit evaluates recipe against current sell values. recipe does not
// need to be stored.
func (s *service) Profit(_ context.Context, recipe *domain.Recipe) RecipeView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view(recipe)
}

// Suggestions maps each id recipe references but the database lacks to the
// closest known ids. Empty when every reference resolves.
func (s *service) Suggestions(_ context.Context, recipe *domain.Recipe) map[string][]string {
	s.mu.RLock()
	unknown := s.db.UnknownReferences(recipe)
	s.mu.RUnlock()

	out := make(map[string][]string, len(unknown))
	for _, id := range unknown {
		out[id] = s.resolver.Suggest(id)
	}
	return out
}

func (s *service) AddRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error) {
	if recipe == nil {
		return domain.Result{}, domain.InvalidType("recipe", ErrMsgNilRecipe)
	}
	return s.apply(ctx, OpAddRecipe, func(db *crafting.Database) domain.Result {
		return db.AddRecipe(recipe)
	}, "recipe", recipe.String())
}

func (s *service) EditRecipe(ctx context.Context, old, replacement *domain.Recipe) (domain.Result, error) {
	if old == nil || replacement == nil {
		return domain.Result{}, domain.InvalidType("recipe", ErrMsgNilRecipe)
	}
	return s.apply(ctx, OpEditRecipe, func(db *crafting.Database) domain.Result {
		return db.EditRecipe(old, replacement)
	}, "recipe", old.String(), "replacement", replacement.String())
}

func (s *service) RemoveRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error) {
	if recipe == nil {
		return domain.Result{}, domain.InvalidType("recipe", ErrMsgNilRecipe)
	}
	return s.apply(ctx, OpRemoveRecipe, func(db *crafting.Database) domain.Result {
		return db.RemoveRecipe(recipe)
	}, "recipe", recipe.String())
}
