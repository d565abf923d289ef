package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// writeItems prints items as an aligned id/name/value table
func writeItems(w io.Writer, items []*domain.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVALUE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", item.ID(), item.Name, item.SellValue)
	}
	return tw.Flush()
}

type addItemCommand struct{ *app }

func (c *addItemCommand) Name() string { return "add-item" }

func (c *addItemCommand) Description() string {
	return "Add an item (-id, -name, -value)"
}

func (c *addItemCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	id := fset.String("id", "", "item id")
	name := fset.String("name", "", "display name")
	value := fset.Int("value", 0, "sell value")
	if err := parseFlags(fset, args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	item, err := domain.NewItem(*id, *name, *value)
	if err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	res, err := svc.AddItem(ctx, item)
	return c.report(res, err, nil)
}

type editItemCommand struct{ *app }

func (c *editItemCommand) Name() string { return "edit-item" }

func (c *editItemCommand) Description() string {
	return "Change an item's name and/or value (-id accepts a display name)"
}

func (c *editItemCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	ref := fset.String("id", "", "item id or display name")
	name := fset.String("name", "", "new display name")
	value := fset.Int("value", 0, "new sell value")
	if err := parseFlags(fset, args); err != nil {
		return err
	}
	if err := requireFlag("id", *ref); err != nil {
		return err
	}

	var edit crafting.ItemEdit
	if flagWasSet(fset, "name") {
		edit.Name = name
	}
	if flagWasSet(fset, "value") {
		edit.SellValue = value
	}
	if edit.Name == nil && edit.SellValue == nil {
		return fmt.Errorf("%w: give -name and/or -value", errUsage)
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	id := *ref
	if resolved, ok := svc.ResolveItem(ctx, *ref); ok {
		id = resolved
	}
	res, err := svc.EditItem(ctx, id, edit)
	return c.report(res, err, nil)
}

type removeItemCommand struct{ *app }

func (c *removeItemCommand) Name() string { return "remove-item" }

func (c *removeItemCommand) Description() string {
	return "Remove an item; -cascade also removes recipes using it"
}

func (c *removeItemCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	ref := fset.String("id", "", "item id or display name")
	cascade := fset.Bool("cascade", false, "also remove recipes that use the item")
	if err := parseFlags(fset, args); err != nil {
		return err
	}
	if err := requireFlag("id", *ref); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	id := *ref
	if resolved, ok := svc.ResolveItem(ctx, *ref); ok {
		id = resolved
	}
	res, err := svc.RemoveItem(ctx, id, *cascade)
	return c.report(res, err, nil)
}

type itemsCommand struct{ *app }

func (c *itemsCommand) Name() string { return "items" }

func (c *itemsCommand) Description() string {
	return "List items, or search them with -search"
}

func (c *itemsCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	query := fset.String("search", "", "match ids and names, tolerating typos")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}

	if *query == "" {
		return writeItems(c.out, svc.ListItems(ctx))
	}

	matches := svc.SearchItems(ctx, *query)
	if len(matches) == 0 {
		c.ui.Warning("No items match %q", *query)
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMATCH")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Name, m.Source)
	}
	return tw.Flush()
}
