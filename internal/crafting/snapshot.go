package crafting

import (
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/utils"
)

// Snapshot is the serialized form of a whole database, as written to disk:
//
//	{"name": ..., "items": {"<id>": {...}}, "recipes": [{...}]}
type Snapshot struct {
	Name    string                       `json:"name"`
	Items   map[string]domain.ItemRecord `json:"items"`
	Recipes []domain.RecipeRecord        `json:"recipes"`
}

// Snapshot captures the database. Recipe order is preserved.
func (d *Database) Snapshot() Snapshot {
	items := make(map[string]domain.ItemRecord, len(d.items))
	for id, item := range d.items {
		items[id] = item.Record()
	}
	recipes := make([]domain.RecipeRecord, 0, len(d.recipes))
	for _, r := range d.recipes {
		recipes = append(recipes, r.Record())
	}
	return Snapshot{Name: d.name, Items: items, Recipes: recipes}
}

// FromSnapshot rebuilds a database. It goes through New, so item keys are
// checked against ids but recipes are not checked against items.
func FromSnapshot(s Snapshot) (*Database, error) {
	if s.Items == nil {
		return nil, domain.InvalidType("items", ErrMsgItemsMissing)
	}
	if s.Recipes == nil {
		return nil, domain.InvalidType("recipes", ErrMsgRecipesMissing)
	}

	items := make(map[string]*domain.Item, len(s.Items))
	for key, rec := range s.Items {
		item, err := domain.ItemFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtItemRecord, key, err)
		}
		items[key] = item
	}

	recipes := make([]*domain.Recipe, 0, len(s.Recipes))
	for i, rec := range s.Recipes {
		r, err := domain.RecipeFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtRecipeRecord, i, err)
		}
		recipes = append(recipes, r)
	}

	return New(WithName(s.Name), WithItems(items), WithRecipes(recipes))
}

// Save writes the database as indented JSON. An empty filename means
// DefaultFilename.
func (d *Database) Save(filename string) error {
	if filename == "" {
		filename = d.DefaultFilename()
	}
	return utils.SaveJSON(filename, d.Snapshot())
}

// Load reads a database written by Save. Missing files and malformed JSON
// come back as wrapped *fs.PathError and *json.SyntaxError values.
func Load(filename string) (*Database, error) {
	var s Snapshot
	if err := utils.LoadJSON(filename, &s); err != nil {
		return nil, err
	}
	return FromSnapshot(s)
}
