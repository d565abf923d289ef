package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

const (
	itemIron      = "iron"
	itemIronIngot = "iron_ingot"
	itemCopper    = "copper"
	itemCoal      = "coal"
)

// newTestDatabase returns iron=10, iron_ingot=20, copper=15, coal=2 and one
// recipe: 4 iron -> 2 iron_ingot.
func newTestDatabase(t *testing.T) *crafting.Database {
	t.Helper()
	db, err := crafting.New(crafting.WithName("TestDB"))
	require.NoError(t, err)
	for _, spec := range []struct {
		id, name string
		value    int
	}{
		{itemIron, "Iron", 10},
		{itemIronIngot, "Iron Ingot", 20},
		{itemCopper, "Copper", 15},
		{itemCoal, "Coal", 2},
	} {
		require.True(t, db.AddItem(newItem(t, spec.id, spec.name, spec.value)).OK())
	}
	require.True(t, db.AddRecipe(ironRecipe(t)).OK())
	return db
}

// newTestService wraps newTestDatabase with a file store in a temp dir
func newTestService(t *testing.T, cfg Config) (Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_db.json")
	return NewService(newTestDatabase(t), NewFileStore(path, nil), cfg), path
}

func newItem(t *testing.T, id, name string, value int) *domain.Item {
	t.Helper()
	item, err := domain.NewItem(id, name, value)
	require.NoError(t, err)
	return item
}

func newRecipe(t *testing.T, inputs, outputs map[string]int, opts ...domain.RecipeOption) *domain.Recipe {
	t.Helper()
	r, err := domain.NewRecipe(inputs, outputs, opts...)
	require.NoError(t, err)
	return r
}

func ironRecipe(t *testing.T) *domain.Recipe {
	return newRecipe(t, map[string]int{itemIron: 4}, map[string]int{itemIronIngot: 2})
}
