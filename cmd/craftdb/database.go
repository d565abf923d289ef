package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/CraftingDB_Go/internal/bootstrap"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/validation"
)

type initCommand struct{ *app }

func (c *initCommand) Name() string { return "init" }

func (c *initCommand) Description() string {
	return "Create an empty database file"
}

func (c *initCommand) Run(_ context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	name := fset.String("name", c.cfg.DatabaseName, "database name")
	force := fset.Bool("force", false, "overwrite an existing file")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	db, err := crafting.New()
	if err != nil {
		return err
	}
	db.Rename(*name)

	// Without an explicit -file the database is saved as "<name>.json"
	path := *file
	if !flagWasSet(fset, "file") && flagWasSet(fset, "name") {
		path = db.DefaultFilename()
	}

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists, use -force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := db.Save(path); err != nil {
		return err
	}
	c.ui.Success("Created %q at %s", db.Name(), path)
	return nil
}

type renameCommand struct{ *app }

func (c *renameCommand) Name() string { return "rename" }

func (c *renameCommand) Description() string {
	return "Change the database name"
}

func (c *renameCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	name := fset.String("name", "", "new database name")
	if err := parseFlags(fset, args); err != nil {
		return err
	}
	if err := requireFlag("name", *name); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}
	info, err := svc.Rename(ctx, *name)
	if err != nil {
		return err
	}
	c.ui.Success("Database renamed to %q", info.Name)
	return nil
}

type showCommand struct{ *app }

func (c *showCommand) Name() string { return "show" }

func (c *showCommand) Description() string {
	return "Print the database name, items and recipes"
}

func (c *showCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	svc, err := c.open(ctx, *file)
	if err != nil {
		return err
	}

	info := svc.Info(ctx)
	c.ui.Header(info.Name)
	c.ui.Println(fmt.Sprintf("File: %s", info.Location))
	c.ui.Println(fmt.Sprintf("%d items, %d recipes", info.ItemCount, info.RecipeCount))

	c.ui.Header("Items")
	if err := writeItems(c.out, svc.ListItems(ctx)); err != nil {
		return err
	}

	c.ui.Header("Recipes")
	for _, view := range svc.ListRecipes(ctx, crafting.SortByProfit, crafting.Descending) {
		c.ui.Println(view.Description)
	}
	return nil
}

type validateCommand struct{ *app }

func (c *validateCommand) Name() string { return "validate" }

func (c *validateCommand) Description() string {
	return "Check a database file against the schema and its item references"
}

func (c *validateCommand) Run(_ context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	if err := validation.NewSchemaValidator().ValidateDatabaseFile(*file); err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	db, err := crafting.Load(*file)
	if err != nil {
		return err
	}

	dangling := 0
	for _, recipe := range db.Recipes() {
		if unknown := db.UnknownReferences(recipe); len(unknown) > 0 {
			dangling++
			c.ui.Warning("%s references unknown items %v", db.Describe(recipe), unknown)
		}
	}
	if dangling > 0 {
		return fmt.Errorf("%d recipes reference unknown items", dangling)
	}

	c.ui.Success("%s is valid (%d items, %d recipes)", *file, db.ItemCount(), db.RecipeCount())
	return nil
}

type serveCommand struct{ *app }

func (c *serveCommand) Name() string { return "serve" }

func (c *serveCommand) Description() string {
	return "Serve the database over the HTTP API (needs API_KEY)"
}

func (c *serveCommand) Run(ctx context.Context, args []string) error {
	fset, file := c.flags(c.Name())
	port := fset.Int("port", c.cfg.Port, "listen port")
	if err := parseFlags(fset, args); err != nil {
		return err
	}

	cfg := *c.cfg
	cfg.Port = *port

	svc, err := bootstrap.OpenCatalog(ctx, &cfg, *file)
	if err != nil {
		return err
	}
	c.ui.Info("Serving %s on :%d", svc.Info(ctx).Location, cfg.Port)
	return bootstrap.Serve(ctx, &cfg, svc)
}
