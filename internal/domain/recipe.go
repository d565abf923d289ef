package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultRecipeType is used when a recipe is created without a type tag.
const DefaultRecipeType = "CRAFT"

// Recipe transforms input quantities into output quantities.
// Recipes refer to items by id only; whether those ids exist is the
// database's concern, not the recipe's.
type Recipe struct {
	inputs  map[string]int
	outputs map[string]int
	typ     string
	time    float64
}

// RecipeOption customises NewRecipe.
type RecipeOption func(*recipeOptions)

type recipeOptions struct {
	typ  string
	time float64
}

// WithType sets the recipe type tag. It is stored uppercased.
func WithType(t string) RecipeOption {
	return func(o *recipeOptions) { o.typ = t }
}

// WithTime sets the recipe duration.
func WithTime(t float64) RecipeOption {
	return func(o *recipeOptions) { o.time = t }
}

// NewRecipe validates quantities and creates a Recipe. The maps are copied.
func NewRecipe(inputs, outputs map[string]int, opts ...RecipeOption) (*Recipe, error) {
	o := recipeOptions{typ: DefaultRecipeType}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateQuantities("inputs", inputs); err != nil {
		return nil, err
	}
	if err := validateQuantities("outputs", outputs); err != nil {
		return nil, err
	}
	if math.IsNaN(o.time) || math.IsInf(o.time, 0) || o.time < 0 {
		return nil, invalidValue("time", "time must be a non-negative number, got %v", o.time)
	}

	return &Recipe{
		inputs:  copyQuantities(inputs),
		outputs: copyQuantities(outputs),
		typ:     upper(o.typ),
		time:    o.time,
	}, nil
}

func validateQuantities(field string, q map[string]int) error {
	if q == nil {
		return invalidType(field, "%s must be a mapping of item_id -> quantity", field)
	}
	for itemID, quantity := range q {
		if itemID == "" {
			return invalidType(field, "item_id must be a non-empty string")
		}
		if quantity <= 0 {
			return invalidValue(field, "quantity for %s must be positive, got %d", itemID, quantity)
		}
	}
	return nil
}

func copyQuantities(q map[string]int) map[string]int {
	c := make(map[string]int, len(q))
	for k, v := range q {
		c[k] = v
	}
	return c
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Inputs returns a copy of the consumed item quantities.
func (r *Recipe) Inputs() map[string]int { return copyQuantities(r.inputs) }

// Outputs returns a copy of the produced item quantities.
func (r *Recipe) Outputs() map[string]int { return copyQuantities(r.outputs) }

func (r *Recipe) Type() string  { return r.typ }
func (r *Recipe) Time() float64 { return r.time }

// Consumes reports whether itemID is one of the recipe's inputs.
func (r *Recipe) Consumes(itemID string) bool {
	_, ok := r.inputs[itemID]
	return ok
}

// Produces reports whether itemID is one of the recipe's outputs.
func (r *Recipe) Produces(itemID string) bool {
	_, ok := r.outputs[itemID]
	return ok
}

// References reports whether the recipe consumes or produces itemID.
func (r *Recipe) References(itemID string) bool {
	return r.Consumes(itemID) || r.Produces(itemID)
}

// InputIDs returns the input item ids in sorted order.
func (r *Recipe) InputIDs() []string { return sortedKeys(r.inputs) }

// OutputIDs returns the output item ids in sorted order.
func (r *Recipe) OutputIDs() []string { return sortedKeys(r.outputs) }

// Equal compares inputs, outputs, type and time.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.typ == other.typ &&
		r.time == other.time &&
		quantitiesEqual(r.inputs, other.inputs) &&
		quantitiesEqual(r.outputs, other.outputs)
}

func quantitiesEqual(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Key is a canonical string form; equal recipes have equal keys.
func (r *Recipe) Key() string {
	var b strings.Builder
	b.WriteString(r.typ)
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(r.time, 'g', -1, 64))
	b.WriteByte('|')
	writePairs(&b, r.inputs)
	b.WriteString("->")
	writePairs(&b, r.outputs)
	return b.String()
}

func writePairs(b *strings.Builder, q map[string]int) {
	for i, k := range sortedKeys(q) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(q[k]))
	}
}

// CRAFT: iron x4 -> iron_ingot x2 (time: 0.0)
func (r *Recipe) String() string {
	return fmt.Sprintf("%s: %s -> %s (time: %s)", r.typ, formatPairs(r.inputs), formatPairs(r.outputs), FormatTime(r.time))
}

func formatPairs(q map[string]int) string {
	parts := make([]string, 0, len(q))
	for _, k := range sortedKeys(q) {
		parts = append(parts, fmt.Sprintf("%s x%d", k, q[k]))
	}
	return strings.Join(parts, ", ")
}

// FormatTime renders a duration the way the editor always has: 5 -> "5.0".
func FormatTime(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func sortedKeys(q map[string]int) []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RecipeRecord is the serialized form of a Recipe. Type and Time are
// optional on input and default to "CRAFT" and 0.
type RecipeRecord struct {
	Inputs  map[string]int `json:"inputs"`
	Outputs map[string]int `json:"outputs"`
	Type    *string        `json:"type,omitempty"`
	Time    *float64       `json:"time,omitempty"`
}

// Record converts the recipe to its serialized form.
func (r *Recipe) Record() RecipeRecord {
	t := r.typ
	tm := r.time
	return RecipeRecord{
		Inputs:  r.Inputs(),
		Outputs: r.Outputs(),
		Type:    &t,
		Time:    &tm,
	}
}

// RecipeFromRecord rebuilds a Recipe, applying defaults for absent fields.
func RecipeFromRecord(rec RecipeRecord) (*Recipe, error) {
	opts := make([]RecipeOption, 0, 2)
	if rec.Type != nil {
		opts = append(opts, WithType(*rec.Type))
	}
	if rec.Time != nil {
		opts = append(opts, WithTime(*rec.Time))
	}
	return NewRecipe(rec.Inputs, rec.Outputs, opts...)
}

// UnmarshalJSON decodes a recipe record, reporting shape problems (a
// non-object mapping, a fractional or non-numeric quantity) as
// ErrInvalidType and non-positive quantities as ErrInvalidValue.
func (rec *RecipeRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Inputs  json.RawMessage `json:"inputs"`
		Outputs json.RawMessage `json:"outputs"`
		Type    json.RawMessage `json:"type"`
		Time    json.RawMessage `json:"time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalidType("recipe", "recipe must be an object: %v", err)
	}

	inputs, err := decodeQuantities("inputs", raw.Inputs)
	if err != nil {
		return err
	}
	outputs, err := decodeQuantities("outputs", raw.Outputs)
	if err != nil {
		return err
	}

	out := RecipeRecord{Inputs: inputs, Outputs: outputs}
	if !isNull(raw.Type) {
		var t string
		if err := json.Unmarshal(raw.Type, &t); err != nil {
			return invalidType("type", "type must be a string")
		}
		out.Type = &t
	}
	if !isNull(raw.Time) {
		var t float64
		if err := json.Unmarshal(raw.Time, &t); err != nil {
			return invalidType("time", "time must be a number")
		}
		out.Time = &t
	}

	*rec = out
	return nil
}

func decodeQuantities(field string, raw json.RawMessage) (map[string]int, error) {
	if isNull(raw) {
		return nil, invalidType(field, "%s must be a mapping of item_id -> quantity", field)
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, invalidType(field, "%s must be a mapping of item_id -> quantity", field)
	}

	q := make(map[string]int, len(entries))
	for itemID, v := range entries {
		n, err := strconv.Atoi(string(bytes.TrimSpace(v)))
		if err != nil {
			return nil, invalidType(field, "quantity for %s must be an int, got %s", itemID, string(v))
		}
		if n <= 0 {
			return nil, invalidValue(field, "quantity for %s must be positive, got %d", itemID, n)
		}
		q[itemID] = n
	}
	return q, nil
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
