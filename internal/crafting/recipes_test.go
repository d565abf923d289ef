package crafting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

func TestAddRecipe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.AddRecipe(ironRecipe(t, domain.WithTime(5)))
		assert.True(t, res.OK())
		assert.Equal(t, MsgRecipeAdded, res.Message)
		assert.Equal(t, 1, db.RecipeCount())
	})

	t.Run("duplicate", func(t *testing.T) {
		db := newTestDatabase(t)
		requireOK(t, db.AddRecipe(ironRecipe(t)))

		res := db.AddRecipe(ironRecipe(t, domain.WithType("craft")))
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonDuplicate, res.Reason)
		assert.Equal(t, MsgRecipeExists, res.Message)
		assert.Equal(t, 1, db.RecipeCount())
	})

	t.Run("same ingredients different time is not a duplicate", func(t *testing.T) {
		db := newTestDatabase(t)
		requireOK(t, db.AddRecipe(ironRecipe(t)))
		requireOK(t, db.AddRecipe(ironRecipe(t, domain.WithTime(3))))
		assert.Equal(t, 2, db.RecipeCount())
	})

	t.Run("unknown input", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.AddRecipe(newRecipe(t, map[string]int{"gold": 2}, map[string]int{itemIronIngot: 1}))
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonUnknownItem, res.Reason)
		assert.Equal(t, fmt.Sprintf(MsgFmtUnknownInput, "gold"), res.Message)
		assert.Empty(t, db.Recipes())
	})

	t.Run("unknown output", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.AddRecipe(newRecipe(t, map[string]int{itemCopper: 3}, map[string]int{itemCopperIngot: 1}))
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonUnknownItem, res.Reason)
		assert.Equal(t, fmt.Sprintf(MsgFmtUnknownOutput, itemCopperIngot), res.Message)
		assert.Empty(t, db.Recipes())
	})

	t.Run("inputs are checked before outputs", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.AddRecipe(newRecipe(t, map[string]int{"gold": 2}, map[string]int{"gold_ingot": 1}))
		assert.Contains(t, res.Message, "input item 'gold'")
	})
}

func TestEditRecipe(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		db := newTestDatabase(t)
		first := newRecipe(t, map[string]int{itemCoal: 1}, map[string]int{itemCopper: 1})
		old := ironRecipe(t)
		last := newRecipe(t, map[string]int{itemCopper: 2}, map[string]int{itemCoal: 1})
		requireOK(t, db.AddRecipe(first))
		requireOK(t, db.AddRecipe(old))
		requireOK(t, db.AddRecipe(last))

		replacement := ironRecipe(t, domain.WithTime(10))
		res := db.EditRecipe(ironRecipe(t), replacement)
		assert.True(t, res.OK())
		assert.Equal(t, MsgRecipeEdited, res.Message)

		recipes := db.Recipes()
		require.Len(t, recipes, 3)
		assert.True(t, recipes[0].Equal(first))
		assert.True(t, recipes[1].Equal(replacement))
		assert.True(t, recipes[2].Equal(last))
	})

	t.Run("old recipe not found", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.EditRecipe(ironRecipe(t), ironRecipe(t, domain.WithTime(1)))
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonNotFound, res.Reason)
	})

	t.Run("replacement references unknown item", func(t *testing.T) {
		db := newTestDatabase(t)
		requireOK(t, db.AddRecipe(ironRecipe(t)))

		res := db.EditRecipe(ironRecipe(t), newRecipe(t, map[string]int{itemIron: 4}, map[string]int{"steel": 1}))
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonUnknownItem, res.Reason)
		assert.True(t, db.Recipes()[0].Equal(ironRecipe(t)))
	})

	t.Run("replacement duplicates another recipe", func(t *testing.T) {
		db := newTestDatabase(t)
		other := newRecipe(t, map[string]int{itemCoal: 1}, map[string]int{itemCopper: 1})
		requireOK(t, db.AddRecipe(ironRecipe(t)))
		requireOK(t, db.AddRecipe(other))

		res := db.EditRecipe(ironRecipe(t), other)
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonDuplicate, res.Reason)
	})

	t.Run("replacing with an equal recipe succeeds", func(t *testing.T) {
		db := newTestDatabase(t)
		requireOK(t, db.AddRecipe(ironRecipe(t)))
		assert.True(t, db.EditRecipe(ironRecipe(t), ironRecipe(t)).OK())
	})
}

func TestRemoveRecipe(t *testing.T) {
	db := newTestDatabase(t)
	keep := newRecipe(t, map[string]int{itemCoal: 1}, map[string]int{itemCopper: 1})
	requireOK(t, db.AddRecipe(ironRecipe(t)))
	requireOK(t, db.AddRecipe(keep))

	res := db.RemoveRecipe(ironRecipe(t))
	assert.True(t, res.OK())
	assert.Equal(t, MsgRecipeRemoved, res.Message)
	require.Len(t, db.Recipes(), 1)
	assert.True(t, db.Recipes()[0].Equal(keep))

	res = db.RemoveRecipe(ironRecipe(t))
	assert.False(t, res.OK())
	assert.Equal(t, domain.ReasonNotFound, res.Reason)
	assert.Equal(t, MsgRecipeNotFound, res.Message)
}

func TestUnknownReferences(t *testing.T) {
	db := newTestDatabase(t)
	r := newRecipe(t, map[string]int{"gold": 1, itemIron: 1}, map[string]int{"gold": 1, "gold_ingot": 1})
	assert.Equal(t, []string{"gold", "gold_ingot"}, db.UnknownReferences(r))
	assert.Empty(t, db.UnknownReferences(ironRecipe(t)))
}

func TestRecipesUsing(t *testing.T) {
	db := newTestDatabase(t)
	requireOK(t, db.AddRecipe(ironRecipe(t)))
	requireOK(t, db.AddRecipe(newRecipe(t, map[string]int{itemCoal: 1}, map[string]int{itemCopper: 1})))

	assert.Len(t, db.RecipesUsing(itemIron), 1)
	assert.Len(t, db.RecipesUsing(itemIronIngot), 1)
	assert.Len(t, db.RecipesUsing(itemCoal), 1)
	assert.Empty(t, db.RecipesUsing("gold"))
}
