package crafting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// Test fixture ids
const (
	itemIron        = "iron"
	itemIronIngot   = "iron_ingot"
	itemCopper      = "copper"
	itemCopperIngot = "copper_ingot"
	itemCoal        = "coal"
)

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

// ironRecipe is {iron:4} -> {iron_ingot:2}
func ironRecipe(t *testing.T, opts ...domain.RecipeOption) *domain.Recipe {
	t.Helper()
	return newRecipe(t, map[string]int{itemIron: 4}, map[string]int{itemIronIngot: 2}, opts...)
}

// newTestDatabase returns "TestDB" holding iron (10), iron_ingot (20),
// copper (15) and coal (2) with no recipes.
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := New(WithName("TestDB"))
	require.NoError(t, err)

	for _, item := range []*domain.Item{
		newItem(t, itemIron, "Iron", 10),
		newItem(t, itemIronIngot, "Iron Ingot", 20),
		newItem(t, itemCopper, "Copper", 15),
		newItem(t, itemCoal, "Coal", 2),
	} {
		require.True(t, db.AddItem(item).OK())
	}
	return db
}

func requireOK(t *testing.T, res domain.Result) {
	t.Helper()
	require.True(t, res.OK(), "expected ok, got rejected: %s", res.Message)
}
