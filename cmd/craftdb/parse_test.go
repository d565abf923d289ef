package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

func TestParseQuantities(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    map[string]int
		wantErr bool
	}{
		{"empty", "", map[string]int{}, false},
		{"blank", "   ", map[string]int{}, false},
		{"single", "iron:4", map[string]int{"iron": 4}, false},
		{"several with spaces", " iron : 4 , coal:1", map[string]int{"iron": 4, "coal": 1}, false},
		{"display name with spaces", "Iron Ingot:2", map[string]int{"Iron Ingot": 2}, false},
		{"colon inside id", "mod:iron:3", map[string]int{"mod:iron": 3}, false},
		{"zero parses", "iron:0", map[string]int{"iron": 0}, false},
		{"missing quantity", "iron", nil, true},
		{"missing id", ":4", nil, true},
		{"not a number", "iron:four", nil, true},
		{"fraction", "iron:1.5", nil, true},
		{"trailing comma", "iron:1,", nil, true},
		{"duplicate", "iron:1,iron:2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuantities(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadQuantitySpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newParseTestService(t *testing.T) catalog.Service {
	t.Helper()
	db, err := crafting.New()
	require.NoError(t, err)
	for _, it := range []struct {
		id, name string
		value    int
	}{{"iron", "Iron", 10}, {"iron_ingot", "Iron Ingot", 20}} {
		item, err := domain.NewItem(it.id, it.name, it.value)
		require.NoError(t, err)
		require.True(t, db.AddItem(item).OK())
	}
	store := catalog.NewFileStore(filepath.Join(t.TempDir(), "db.json"), nil)
	return catalog.NewService(db, store, catalog.Config{ProfitCacheSize: 8})
}

func TestRecipeSpecBuild(t *testing.T) {
	ctx := context.Background()
	svc := newParseTestService(t)

	t.Run("names resolve to ids", func(t *testing.T) {
		recipe, err := recipeSpec{inputs: "Iron:4", outputs: "iron ingot:2", typ: "smelt", time: 5}.build(ctx, svc)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"iron": 4}, recipe.Inputs())
		assert.Equal(t, map[string]int{"iron_ingot": 2}, recipe.Outputs())
		assert.Equal(t, "SMELT", recipe.Type())
		assert.Equal(t, 5.0, recipe.Time())
	})

	t.Run("default type", func(t *testing.T) {
		recipe, err := recipeSpec{inputs: "iron:1", outputs: "iron_ingot:1"}.build(ctx, svc)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultRecipeType, recipe.Type())
	})

	t.Run("unknown references are kept", func(t *testing.T) {
		recipe, err := recipeSpec{inputs: "gold:1", outputs: "iron:1"}.build(ctx, svc)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"gold": 1}, recipe.Inputs())
	})

	t.Run("id and name for the same item", func(t *testing.T) {
		_, err := recipeSpec{inputs: "iron:1,Iron:2", outputs: "iron_ingot:1"}.build(ctx, svc)
		assert.ErrorIs(t, err, errBadQuantitySpec)
	})

	t.Run("non-positive quantity is a validation error", func(t *testing.T) {
		_, err := recipeSpec{inputs: "iron:0", outputs: "iron_ingot:1"}.build(ctx, svc)
		assert.ErrorIs(t, err, domain.ErrInvalidValue)
	})

	t.Run("negative time", func(t *testing.T) {
		_, err := recipeSpec{inputs: "iron:1", outputs: "iron_ingot:1", time: -1}.build(ctx, svc)
		assert.ErrorIs(t, err, domain.ErrInvalidValue)
	})
}
