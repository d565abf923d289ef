package crafting

import (
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// ItemEdit lists the fields to change on an item. Nil fields are left alone.
type ItemEdit struct {
	Name      *string
	SellValue *int
}

// AddItem stores the item unless its id is already taken.
func (d *Database) AddItem(item *domain.Item) domain.Result {
	if _, exists := d.items[item.ID()]; exists {
		return domain.Rejected(domain.ReasonDuplicate, MsgItemExists)
	}
	d.items[item.ID()] = item.Clone()
	return domain.Ok(MsgItemAdded)
}

// EditItem updates the name and/or sell value of an existing item in place.
// The id never changes.
func (d *Database) EditItem(id string, edit ItemEdit) domain.Result {
	item, ok := d.items[id]
	if !ok {
		return domain.Rejected(domain.ReasonNotFound, fmt.Sprintf(MsgFmtItemNotFound, id))
	}
	if edit.SellValue != nil && *edit.SellValue < 0 {
		return domain.Rejected(domain.ReasonInvalid, fmt.Sprintf(MsgFmtNegativeValue, id, *edit.SellValue))
	}

	if edit.Name != nil {
		item.Name = *edit.Name
	}
	if edit.SellValue != nil {
		item.SellValue = *edit.SellValue
	}
	return domain.Ok(MsgItemEdited)
}

// RemoveItem deletes an item. If any recipe consumes or produces it, the
// removal is rejected unless cascade is set, in which case those recipes
// are removed first.
func (d *Database) RemoveItem(id string, cascade bool) domain.Result {
	if _, ok := d.items[id]; !ok {
		return domain.Rejected(domain.ReasonNotFound, fmt.Sprintf(MsgFmtItemNotFound, id))
	}

	referencing := len(d.RecipesUsing(id))
	if referencing > 0 && !cascade {
		return domain.Rejected(domain.ReasonReferenced, fmt.Sprintf(MsgFmtItemReferenced, id, referencing))
	}

	if referencing > 0 {
		kept := d.recipes[:0:0]
		for _, r := range d.recipes {
			if !r.References(id) {
				kept = append(kept, r)
			}
		}
		d.recipes = kept
	}
	delete(d.items, id)

	if referencing > 0 {
		return domain.Ok(fmt.Sprintf(MsgFmtItemRemovedWith, referencing))
	}
	return domain.Ok(MsgItemRemoved)
}
