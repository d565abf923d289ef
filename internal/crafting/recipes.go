package crafting

import (
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// AddRecipe appends the recipe if no equal recipe exists and every input
// and output item is known. Nothing is stored on rejection.
func (d *Database) AddRecipe(recipe *domain.Recipe) domain.Result {
	if d.indexOf(recipe) >= 0 {
		return domain.Rejected(domain.ReasonDuplicate, MsgRecipeExists)
	}
	if res, ok := d.checkReferences(recipe); !ok {
		return res
	}

	d.recipes = append(d.recipes, recipe)
	return domain.Ok(MsgRecipeAdded)
}

// EditRecipe replaces the first recipe equal to old with replacement, keeping
// its position. The replacement must only reference known items and must
// not duplicate another stored recipe.
func (d *Database) EditRecipe(old, replacement *domain.Recipe) domain.Result {
	idx := d.indexOf(old)
	if idx < 0 {
		return domain.Rejected(domain.ReasonNotFound, MsgRecipeNotFound)
	}
	if res, ok := d.checkReferences(replacement); !ok {
		return res
	}
	for i, r := range d.recipes {
		if i != idx && r.Equal(replacement) {
			return domain.Rejected(domain.ReasonDuplicate, MsgRecipeExists)
		}
	}

	d.recipes[idx] = replacement
	return domain.Ok(MsgRecipeEdited)
}

// RemoveRecipe removes the first recipe equal to the argument.
func (d *Database) RemoveRecipe(recipe *domain.Recipe) domain.Result {
	idx := d.indexOf(recipe)
	if idx < 0 {
		return domain.Rejected(domain.ReasonNotFound, MsgRecipeNotFound)
	}
	d.recipes = append(d.recipes[:idx:idx], d.recipes[idx+1:]...)
	return domain.Ok(MsgRecipeRemoved)
}

// HasRecipe reports whether an equal recipe is stored.
func (d *Database) HasRecipe(recipe *domain.Recipe) bool {
	return d.indexOf(recipe) >= 0
}

func (d *Database) indexOf(recipe *domain.Recipe) int {
	for i, r := range d.recipes {
		if r.Equal(recipe) {
			return i
		}
	}
	return -1
}

// checkReferences verifies inputs, then outputs, against the item set.
func (d *Database) checkReferences(recipe *domain.Recipe) (domain.Result, bool) {
	if id, ok := d.firstUnknown(recipe.InputIDs()); !ok {
		return domain.Rejected(domain.ReasonUnknownItem, fmt.Sprintf(MsgFmtUnknownInput, id)), false
	}
	if id, ok := d.firstUnknown(recipe.OutputIDs()); !ok {
		return domain.Rejected(domain.ReasonUnknownItem, fmt.Sprintf(MsgFmtUnknownOutput, id)), false
	}
	return domain.Result{}, true
}

func (d *Database) firstUnknown(ids []string) (string, bool) {
	for _, id := range ids {
		if _, ok := d.items[id]; !ok {
			return id, false
		}
	}
	return "", true
}

// UnknownReferences lists every item id the recipe references that is not
// in the database, inputs first.
func (d *Database) UnknownReferences(recipe *domain.Recipe) []string {
	var missing []string
	for _, id := range recipe.InputIDs() {
		if !d.HasItem(id) {
			missing = append(missing, id)
		}
	}
	for _, id := range recipe.OutputIDs() {
		if !d.HasItem(id) && !recipe.Consumes(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
