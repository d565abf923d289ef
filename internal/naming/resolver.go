package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// Match is a single search hit
type Match struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// Resolver maps display names to item ids and finds close matches for
// mistyped references.
type Resolver interface {
	// ResolvePublicName converts a display name (case-insensitive) to an item id
	ResolvePublicName(publicName string) (id string, ok bool)

	// Resolve returns ref unchanged if it is a registered id, otherwise the id
	// whose display name matches ref.
	Resolve(ref string) (id string, ok bool)

	// Suggest returns up to MaxSuggestions registered ids close to query
	Suggest(query string) []string

	// Search ranks registered items against query by id and display name
	Search(query string) []Match

	// RegisterItem registers or renames an item
	RegisterItem(id, name string)

	// UnregisterItem drops an item
	UnregisterItem(id string)

	// Reset replaces every registration with items
	Reset(items []*domain.Item)
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: lower(name) -> id
	publicToInternal map[string]string

	// Mapping: id -> name
	internalToPublic map[string]string
}

// NewResolver creates a resolver seeded with items
func NewResolver(items []*domain.Item) Resolver {
	r := &resolver{}
	r.Reset(items)
	return r
}

// Reset replaces every registration
func (r *resolver) Reset(items []*domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.publicToInternal = make(map[string]string, len(items))
	r.internalToPublic = make(map[string]string, len(items))
	for _, item := range items {
		r.registerUnlocked(item.ID(), item.Name)
	}
}

// RegisterItem adds an id->name mapping, replacing any previous name for id
func (r *resolver) RegisterItem(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerUnlocked(id, name)
}

func (r *resolver) registerUnlocked(id, name string) {
	if old, ok := r.internalToPublic[id]; ok {
		key := strings.ToLower(old)
		if r.publicToInternal[key] == id {
			delete(r.publicToInternal, key)
		}
	}
	r.internalToPublic[id] = name
	if name != "" {
		r.publicToInternal[strings.ToLower(name)] = id
	}
}

// UnregisterItem removes id and its display name
func (r *resolver) UnregisterItem(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.internalToPublic[id]
	if !ok {
		return
	}
	delete(r.internalToPublic, id)
	key := strings.ToLower(name)
	if r.publicToInternal[key] == id {
		delete(r.publicToInternal, key)
	}
}

// ResolvePublicName converts a display name to an item id
func (r *resolver) ResolvePublicName(publicName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.publicToInternal[strings.ToLower(strings.TrimSpace(publicName))]
	return id, ok
}

// Resolve accepts either an id or a display name
func (r *resolver) Resolve(ref string) (string, bool) {
	r.mu.RLock()
	_, isID := r.internalToPublic[ref]
	r.mu.RUnlock()
	if isID {
		return ref, true
	}
	return r.ResolvePublicName(ref)
}

// Suggest returns the ids closest to query, best first. The query itself is
// never suggested back, but a display name or differently cased id that
// matches exactly is.
func (r *resolver) Suggest(query string) []string {
	matches := r.Search(query)
	out := make([]string, 0, MaxSuggestions)
	for _, m := range matches {
		if m.ID == query {
			continue
		}
		out = append(out, m.ID)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// Search scores every registered item against query. An item is scored by
// the better of its id and its display name.
func (r *resolver) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Match
	for id, name := range r.internalToPublic {
		best, ok := score(q, strings.ToLower(id))
		if byName, nameOK := score(q, strings.ToLower(name)); nameOK && (!ok || byName.Score > best.Score) {
			best, ok = byName, true
		}
		if !ok {
			continue
		}
		best.ID = id
		best.Name = name
		matches = append(matches, best)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score compares an already-lowered query with an already-lowered candidate
func score(q, cand string) (Match, bool) {
	switch {
	case cand == "":
		return Match{}, false
	case q == cand:
		return Match{Score: ScoreExact, Source: SourceExact}, true
	case strings.HasPrefix(cand, q):
		return Match{Score: ScorePrefix, Source: SourcePrefix}, true
	case strings.Contains(cand, q):
		return Match{Score: ScoreSubstring, Source: SourceSubstring}, true
	}

	if len(q) < MinFuzzyLength {
		return Match{}, false
	}
	dist := levenshtein.ComputeDistance(q, cand)
	if dist > levenshteinLimit(len(cand)) {
		return Match{}, false
	}
	return Match{Score: ScoreFuzzyBase - ScoreFuzzyStep*float64(dist), Source: SourceFuzzy}, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
