// Package crafting holds the crafting reference database: a keyed set of
// items and an ordered list of recipes that refer to those items by id.
//
// A Database is not safe for concurrent mutation. Callers sharing one
// across goroutines must serialise access (see internal/catalog).
package crafting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// Database owns a collection of items and recipes and polices the
// references between them.
type Database struct {
	name    string
	items   map[string]*domain.Item
	recipes []*domain.Recipe
}

// Option configures New.
type Option func(*options)

type options struct {
	name    string
	items   map[string]*domain.Item
	recipes []*domain.Recipe
}

// WithName sets the database name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithItems seeds the database with items keyed by id.
func WithItems(items map[string]*domain.Item) Option {
	return func(o *options) { o.items = items }
}

// WithRecipes seeds the database with recipes in order.
func WithRecipes(recipes []*domain.Recipe) Option {
	return func(o *options) { o.recipes = recipes }
}

// New creates a database. Initial items must be keyed by their own id and
// initial recipes must be non-nil. Recipes are not checked against items
// here; only AddRecipe and EditRecipe enforce references.
func New(opts ...Option) (*Database, error) {
	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	items := make(map[string]*domain.Item, len(o.items))
	for key, item := range o.items {
		if item == nil {
			return nil, domain.InvalidType("items", ErrMsgNilItem)
		}
		if key != item.ID() {
			return nil, domain.InvalidValue("items", ErrFmtKeyMismatch, key, item.ID())
		}
		items[key] = item.Clone()
	}

	recipes := make([]*domain.Recipe, 0, len(o.recipes))
	for i, r := range o.recipes {
		if r == nil {
			return nil, domain.InvalidType("recipes", ErrFmtNilRecipe, i)
		}
		recipes = append(recipes, r)
	}

	return &Database{name: o.name, items: items, recipes: recipes}, nil
}

// Name returns the database label, also used as the default filename.
func (d *Database) Name() string {
	return d.name
}

// Rename sets the database label. Surrounding whitespace is dropped and an
// empty name falls back to DefaultName.
func (d *Database) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	d.name = name
}

// DefaultFilename is "<name>.json".
func (d *Database) DefaultFilename() string {
	return d.name + FileExtension
}

// Item returns a copy of the item with the given id.
func (d *Database) Item(id string) (*domain.Item, bool) {
	item, ok := d.items[id]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// HasItem reports whether an item with the given id exists.
func (d *Database) HasItem(id string) bool {
	_, ok := d.items[id]
	return ok
}

// Items returns copies of all items ordered by name, then id.
func (d *Database) Items() []*domain.Item {
	out := make([]*domain.Item, 0, len(d.items))
	for _, item := range d.items {
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID() < out[j].ID()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ItemIDs returns all item ids in sorted order.
func (d *Database) ItemIDs() []string {
	ids := make([]string, 0, len(d.items))
	for id := range d.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Recipes returns the recipes in insertion order. Recipes are immutable,
// so the slice is new but the elements are shared.
func (d *Database) Recipes() []*domain.Recipe {
	out := make([]*domain.Recipe, len(d.recipes))
	copy(out, d.recipes)
	return out
}

// RecipesUsing returns the recipes that consume or produce the item.
func (d *Database) RecipesUsing(itemID string) []*domain.Recipe {
	var out []*domain.Recipe
	for _, r := range d.recipes {
		if r.References(itemID) {
			out = append(out, r)
		}
	}
	return out
}

// ItemCount returns the number of items.
func (d *Database) ItemCount() int { return len(d.items) }

// RecipeCount returns the number of recipes.
func (d *Database) RecipeCount() int { return len(d.recipes) }

func (d *Database) String() string {
	return fmt.Sprintf("%s (%d items, %d recipes)", d.name, len(d.items), len(d.recipes))
}
