package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

func TestAddItem(t *testing.T) {
	db, err := New(WithName("TestDB"))
	require.NoError(t, err)
	iron := newItem(t, itemIron, "Iron", 10)

	res := db.AddItem(iron)
	assert.True(t, res.OK())
	assert.Equal(t, MsgItemAdded, res.Message)

	res = db.AddItem(iron)
	assert.False(t, res.OK())
	assert.Equal(t, domain.ReasonDuplicate, res.Reason)
	assert.Equal(t, MsgItemExists, res.Message)
	assert.Equal(t, 1, db.ItemCount())

	// mutating the caller's copy does not reach into the database
	iron.Name = "Changed"
	got, _ := db.Item(itemIron)
	assert.Equal(t, "Iron", got.Name)
}

func TestEditItem(t *testing.T) {
	name := "Wrought Iron"
	value := 12
	negative := -3

	tests := []struct {
		name       string
		id         string
		edit       ItemEdit
		wantOK     bool
		wantReason domain.Reason
		wantName   string
		wantValue  int
	}{
		{"rename only", itemIron, ItemEdit{Name: &name}, true, domain.ReasonNone, "Wrought Iron", 10},
		{"value only", itemIron, ItemEdit{SellValue: &value}, true, domain.ReasonNone, "Iron", 12},
		{"both", itemIron, ItemEdit{Name: &name, SellValue: &value}, true, domain.ReasonNone, "Wrought Iron", 12},
		{"nothing", itemIron, ItemEdit{}, true, domain.ReasonNone, "Iron", 10},
		{"unknown item", "gold", ItemEdit{Name: &name}, false, domain.ReasonNotFound, "Iron", 10},
		{"negative value leaves item untouched", itemIron, ItemEdit{Name: &name, SellValue: &negative}, false, domain.ReasonInvalid, "Iron", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDatabase(t)
			res := db.EditItem(tt.id, tt.edit)
			assert.Equal(t, tt.wantOK, res.OK(), res.Message)
			assert.Equal(t, tt.wantReason, res.Reason)

			got, ok := db.Item(itemIron)
			require.True(t, ok)
			assert.Equal(t, itemIron, got.ID())
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantValue, got.SellValue)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	t.Run("unreferenced item", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.RemoveItem(itemCoal, false)
		assert.True(t, res.OK())
		assert.Equal(t, MsgItemRemoved, res.Message)
		assert.False(t, db.HasItem(itemCoal))
	})

	t.Run("unknown item", func(t *testing.T) {
		db := newTestDatabase(t)
		res := db.RemoveItem("gold", true)
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonNotFound, res.Reason)
		assert.Equal(t, 4, db.ItemCount())
	})

	t.Run("referenced without cascade leaves everything unchanged", func(t *testing.T) {
		db := newTestDatabase(t)
		requireOK(t, db.AddRecipe(ironRecipe(t)))
		itemsBefore := db.ItemIDs()
		recipesBefore := db.Recipes()

		res := db.RemoveItem(itemIron, false)
		assert.False(t, res.OK())
		assert.Equal(t, domain.ReasonReferenced, res.Reason)
		assert.Contains(t, res.Message, "cascade")
		assert.Contains(t, res.Message, itemIron)

		assert.Equal(t, itemsBefore, db.ItemIDs())
		assert.Equal(t, recipesBefore, db.Recipes())
	})

	t.Run("cascade removes consuming and producing recipes only", func(t *testing.T) {
		db := newTestDatabase(t)
		consumes := ironRecipe(t)
		produces := newRecipe(t, map[string]int{itemCopper: 1, itemCoal: 1}, map[string]int{itemIron: 1})
		unrelated := newRecipe(t, map[string]int{itemCoal: 3}, map[string]int{itemCopper: 1})
		requireOK(t, db.AddRecipe(consumes))
		requireOK(t, db.AddRecipe(unrelated))
		requireOK(t, db.AddRecipe(produces))

		res := db.RemoveItem(itemIron, true)
		assert.True(t, res.OK())
		assert.Equal(t, "Item successfully removed (2 recipe(s) removed)", res.Message)

		assert.False(t, db.HasItem(itemIron))
		require.Len(t, db.Recipes(), 1)
		assert.True(t, db.Recipes()[0].Equal(unrelated))
		assert.True(t, db.HasItem(itemIronIngot))
	})
}
