package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osse101/CraftingDB_Go/internal/bootstrap"
	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/config"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// errUsage marks bad command lines. Parse errors are printed by the flag
// package itself and come back as the bare sentinel.
var errUsage = errors.New("usage error")

// app is the state every command shares
type app struct {
	cfg *config.Config
	ui  *UI
	out io.Writer
}

// rejectedError reports a business-rule rejection from the database
type rejectedError struct {
	result      domain.Result
	suggestions map[string][]string
}

func (e *rejectedError) Error() string {
	return e.result.Message
}

// flags starts a flag set carrying the shared -file flag
func (a *app) flags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	file := fs.String("file", a.cfg.DatabaseFile, "database file")
	return fs, file
}

// open loads the catalog at path. Mutating commands write the file as part of
// the change, so autosave is always on here.
func (a *app) open(ctx context.Context, path string) (catalog.Service, error) {
	cfg := *a.cfg
	cfg.Autosave = true
	return bootstrap.OpenCatalog(ctx, &cfg, path)
}

// report prints the outcome of a mutation. Rejections come back as a
// *rejectedError so main exits non-zero.
func (a *app) report(res domain.Result, err error, suggestions map[string][]string) error {
	if err != nil {
		if errors.Is(err, catalog.ErrAutosaveFailed) {
			a.ui.Warning("%s", res.Message)
		}
		return err
	}
	if !res.OK() {
		return &rejectedError{result: res, suggestions: suggestions}
	}
	a.ui.Success("%s", res.Message)
	return nil
}

// printSuggestions lists close matches per unknown id
func (a *app) printSuggestions(suggestions map[string][]string) {
	ids := make([]string, 0, len(suggestions))
	for id := range suggestions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if len(suggestions[id]) > 0 {
			a.ui.Info("%s: did you mean %v?", id, suggestions[id])
		}
	}
}

// flagWasSet reports whether name was given on the command line
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// parseFlags parses args and rejects stray positional arguments
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return nil
}

// requireFlag fails when a mandatory string flag is blank
func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: -%s is required", errUsage, name)
	}
	return nil
}
