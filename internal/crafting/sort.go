package crafting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// SortKey selects the field SortedRecipes orders by.
type SortKey string

const (
	SortByProfit  SortKey = "profit"
	SortByTime    SortKey = "time"
	SortByType    SortKey = "type"
	SortByInputs  SortKey = "inputs"
	SortByOutputs SortKey = "outputs"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ValidSortKeys returns every supported sort key.
func ValidSortKeys() []SortKey {
	return []SortKey{SortByProfit, SortByTime, SortByType, SortByInputs, SortByOutputs}
}

// ParseSortKey accepts a key case-insensitively; empty means profit.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByProfit, nil
	}
	k := SortKey(strings.ToLower(s))
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key '%s': %w", s, domain.ErrInvalidInput)
}

// ParseSortDirection accepts asc/ascending and desc/descending; empty means
// descending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	default:
		return "", fmt.Errorf("unknown sort direction '%s': %w", s, domain.ErrInvalidInput)
	}
}

// SortedRecipes returns the recipes ordered by key. The sort is stable, so
// ties keep insertion order. When sorting by profit, recipes whose profit
// cannot be computed always come last.
func (d *Database) SortedRecipes(key SortKey, dir SortDirection) []*domain.Recipe {
	recipes := d.Recipes()
	desc := dir == Descending

	var less func(a, b *domain.Recipe) bool
	switch key {
	case SortByTime:
		less = func(a, b *domain.Recipe) bool { return a.Time() < b.Time() }
	case SortByType:
		less = func(a, b *domain.Recipe) bool { return a.Type() < b.Type() }
	case SortByInputs:
		less = func(a, b *domain.Recipe) bool {
			return d.joinedNames(a.InputIDs()) < d.joinedNames(b.InputIDs())
		}
	case SortByOutputs:
		less = func(a, b *domain.Recipe) bool {
			return d.joinedNames(a.OutputIDs()) < d.joinedNames(b.OutputIDs())
		}
	default:
		return d.sortByProfit(recipes, desc)
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		if desc {
			return less(recipes[j], recipes[i])
		}
		return less(recipes[i], recipes[j])
	})
	return recipes
}

func (d *Database) sortByProfit(recipes []*domain.Recipe, desc bool) []*domain.Recipe {
	type keyed struct {
		profit int
		ok     bool
	}
	keys := make(map[*domain.Recipe]keyed, len(recipes))
	for _, r := range recipes {
		p, ok := d.CalcProfit(r)
		keys[r] = keyed{profit: p, ok: ok}
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		a, b := keys[recipes[i]], keys[recipes[j]]
		if a.ok != b.ok {
			return a.ok
		}
		if desc {
			return a.profit > b.profit
		}
		return a.profit < b.profit
	})
	return recipes
}

func (d *Database) joinedNames(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = d.displayName(id)
	}
	return strings.Join(names, ", ")
}

func sortedIDs(q map[string]int) []string {
	ids := make([]string, 0, len(q))
	for id := range q {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
