package crafting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// CalcProfit returns the value of the outputs minus the value of the inputs.
// ok is false when any referenced item is missing; the profit is then
// undefined, not zero.
func (d *Database) CalcProfit(recipe *domain.Recipe) (profit int, ok bool) {
	for id, qty := range recipe.Outputs() {
		item, found := d.items[id]
		if !found {
			return 0, false
		}
		profit += item.SellValue * qty
	}
	for id, qty := range recipe.Inputs() {
		item, found := d.items[id]
		if !found {
			return 0, false
		}
		profit -= item.SellValue * qty
	}
	return profit, true
}

// Describe renders a one-line summary of a recipe using item names:
//
//	CRAFT: 4x Iron -> 2x Iron Ingot | 5.0s | Profit: 0
//
// Ids with no matching item are shown as-is.
func (d *Database) Describe(recipe *domain.Recipe) string {
	profit := MsgProfitNotComputable
	if p, ok := d.CalcProfit(recipe); ok {
		profit = strconv.Itoa(p)
	}
	return fmt.Sprintf("%s: %s -> %s | %ss | Profit: %s",
		recipe.Type(),
		d.describeSide(recipe.Inputs()),
		d.describeSide(recipe.Outputs()),
		domain.FormatTime(recipe.Time()),
		profit)
}

func (d *Database) describeSide(q map[string]int) string {
	ids := sortedIDs(q)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%dx %s", q[id], d.displayName(id)))
	}
	return strings.Join(parts, ", ")
}

// displayName returns the item's name, falling back to the id for
// references the database cannot resolve.
func (d *Database) displayName(id string) string {
	if item, ok := d.items[id]; ok {
		return item.Name
	}
	return id
}
