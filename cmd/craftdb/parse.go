package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

var errBadQuantitySpec = errors.New("invalid quantity list")

// parseQuantities reads "id:qty,id:qty". Quantities are checked by the
// recipe constructor, not here, so "iron:0" parses.
func parseQuantities(spec string) (map[string]int, error) {
	out := make(map[string]int)
	if strings.TrimSpace(spec) == "" {
		return out, nil
	}

	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		sep := strings.LastIndex(entry, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("%w: %q is not id:quantity", errBadQuantitySpec, entry)
		}

		ref := strings.TrimSpace(entry[:sep])
		qty, err := strconv.Atoi(strings.TrimSpace(entry[sep+1:]))
		if err != nil {
			return nil, fmt.Errorf("%w: quantity in %q is not a whole number", errBadQuantitySpec, entry)
		}
		if _, dup := out[ref]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", errBadQuantitySpec, ref)
		}
		out[ref] = qty
	}
	return out, nil
}

// resolveQuantities swaps display names for ids. References that match no
// item are kept as given so the database can reject them with suggestions.
func resolveQuantities(ctx context.Context, svc catalog.Service, q map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(q))
	for ref, qty := range q {
		id := ref
		if resolved, ok := svc.ResolveItem(ctx, ref); ok {
			id = resolved
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%w: %q and another entry name the same item", errBadQuantitySpec, ref)
		}
		out[id] = qty
	}
	return out, nil
}

// recipeSpec is the flag form of a recipe
type recipeSpec struct {
	inputs  string
	outputs string
	typ     string
	time    float64
}

// build parses and resolves the spec into a recipe
func (s recipeSpec) build(ctx context.Context, svc catalog.Service) (*domain.Recipe, error) {
	inputs, err := parseQuantities(s.inputs)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	outputs, err := parseQuantities(s.outputs)
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}

	if svc != nil {
		if inputs, err = resolveQuantities(ctx, svc, inputs); err != nil {
			return nil, fmt.Errorf("inputs: %w", err)
		}
		if outputs, err = resolveQuantities(ctx, svc, outputs); err != nil {
			return nil, fmt.Errorf("outputs: %w", err)
		}
	}

	opts := []domain.RecipeOption{domain.WithTime(s.time)}
	if s.typ != "" {
		opts = append(opts, domain.WithType(s.typ))
	}
	return domain.NewRecipe(inputs, outputs, opts...)
}
