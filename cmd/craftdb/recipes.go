package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// recipeFlags registers -in, -out, -type and -time, each with prefix
func recipeFlags(fset *flag.FlagSet, prefix, what string) *recipeSpec {
	spec := &recipeSpec{}
	fset.StringVar(&spec.inputs, prefix+"in", "", what+" inputs as id:qty,id:qty")
	fset.StringVar(&spec.outputs, prefix+"out", "", what+" outputs as id:qty,id:qty")
	fset.StringVar(&spec.typ, prefix+"type", "", what+" type tag (default CRAFT)")
	fset.Float64Var(&spec.time, prefix+"time", 0, what+" time in seconds")
	return spec
}

// suggestionsFor looks up close matches when res names an unknown item
func suggestionsFor(ctx context.Context, svc catalog.Service, res domain.Result, recipe *domain.Recipe) map[string][]string {
	if res.Reason != domain.ReasonUnknownItem {
		return nil
	}
	return svc.Suggestions(ctx, recipe)
}

type addRecipeCommand struct{ *app }

func (c *addRecipeCommand) Name() string { return "add-recipe" }

func (c *addRecipeCommand) Description() string {
	return "Add a recipe (-in, -out, -type, -time)"
}

func (c *addRecipeCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	spec := recipeFlags(fset, "", "recipe")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	recipe, err := spec.build(ctx, svc)
	if err != nil {
		return err
	}

	res, err := svc.AddRecipe(ctx, recipe)
	if err := c.report(res, err, suggestionsFor(ctx, svc, res, recipe)); err != nil {
		return err
	}
	c.ui.Println(svc.Profit(ctx, recipe).Description)
	return nil
}

type editRecipeCommand struct{ *app }

func (c *editRecipeCommand) Name() string { return "edit-recipe" }

func (c *editRecipeCommand) Description() string {
	return "Replace a recipe in place (-in/-out/... select it, -new-in/-new-out/... replace it)"
}

func (c *editRecipeCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	old := recipeFlags(fset, "", "current")
	replacement := recipeFlags(fset, "new-", "replacement")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	oldRecipe, err := old.build(ctx, svc)
	if err != nil {
		return fmt.Errorf("current recipe: %w", err)
	}
	newRecipe, err := replacement.build(ctx, svc)
	if err != nil {
		return fmt.Errorf("replacement recipe: %w", err)
	}

	res, err := svc.EditRecipe(ctx, oldRecipe, newRecipe)
	return c.report(res, err, suggestionsFor(ctx, svc, res, newRecipe))
}

type removeRecipeCommand struct{ *app }

func (c *removeRecipeCommand) Name() string { return "remove-recipe" }

func (c *removeRecipeCommand) Description() string {
	return "Remove the recipe matching -in, -out, -type and -time"
}

func (c *removeRecipeCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	spec := recipeFlags(fset, "", "recipe")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	recipe, err := spec.build(ctx, svc)
	if err != nil {
		return err
	}

	res, err := svc.RemoveRecipe(ctx, recipe)
	return c.report(res, err, nil)
}

type recipesCommand struct{ *app }

func (c *recipesCommand) Name() string { return "recipes" }

func (c *recipesCommand) Description() string {
	return "List recipes sorted by -sort (profit, time, type, inputs, outputs) and -dir"
}

func (c *recipesCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	sortBy := fset.String("sort", string(crafting.SortByProfit), "sort key")
	dir := fset.String("dir", string(crafting.Descending), "asc or desc")
	using := fset.String("item", "", "only recipes consuming or producing this item, in stored order")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	key, err := crafting.ParseSortKey(*sortBy)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	direction, err := crafting.ParseSortDirection(*dir)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}

	var views []catalog.RecipeView
	if *using != "" {
		id := *using
		if resolved, ok := svc.ResolveItem(ctx, *using); ok {
			id = resolved
		}
		views = svc.RecipesUsing(ctx, id)
	} else {
		views = svc.ListRecipes(ctx, key, direction)
	}

	if len(views) == 0 {
		c.ui.Info("No recipes")
		return nil
	}
	for _, view := range views {
		c.ui.Println(view.Description)
	}
	return nil
}

type profitCommand struct{ *app }

func (c *profitCommand) Name() string { return "profit" }

func (c *profitCommand) Description() string {
	return "Compute the profit of a recipe without storing it"
}

func (c *profitCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	spec := recipeFlags(fset, "", "recipe")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	recipe, err := spec.build(ctx, svc)
	if err != nil {
		return err
	}

	view := svc.Profit(ctx, recipe)
	c.ui.Println(view.Description)
	if view.Profit == nil {
		c.printSuggestions(svc.Suggestions(ctx, recipe))
		return fmt.Errorf("profit cannot be computed: the recipe references unknown items")
	}
	return nil
}
