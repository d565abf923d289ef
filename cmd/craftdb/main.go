package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftingDB_Go/internal/config"
	"github.com/osse101/CraftingDB_Go/internal/logger"
)

// Exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	cliLogLevel  = "warn"
	cliLogFormat = "text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitFailure
	}
	initLogger(cfg, stderr)

	a := &app{cfg: cfg, ui: newUI(stdout), out: stdout}
	registry := newCommandRegistry(a)

	if len(args) < 1 {
		registry.PrintHelp(stderr)
		return exitUsage
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		registry.PrintHelp(stdout)
		return exitOK
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		registry.PrintHelp(stderr)
		return exitUsage
	}

	err = cmd.Run(ctx, args[1:])
	var rejected *rejectedError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		if err != errUsage {
			a.ui.Error("%v", err)
		}
		return exitUsage
	case errors.As(err, &rejected):
		a.ui.Error("%s", rejected.Error())
		a.printSuggestions(rejected.suggestions)
		return exitFailure
	default:
		a.ui.Error("%v", err)
		return exitFailure
	}
}

// initLogger sends logs to stderr. The CLI is quiet unless LOG_LEVEL is set.
func initLogger(cfg *config.Config, w io.Writer) {
	level, format := cliLogLevel, cliLogFormat
	if _, ok := os.LookupEnv(config.EnvLogLevel); ok {
		level = cfg.LogLevel
	}
	if _, ok := os.LookupEnv(config.EnvLogFormat); ok {
		format = cfg.LogFormat
	}

	logger.InitLoggerWithWriter(logger.NewConfig(
		level,
		format,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	), w)
}

func newCommandRegistry(a *app) *Registry {
	r := NewRegistry()

	// Database
	r.Register(&initCommand{a})
	r.Register(&renameCommand{a})
	r.Register(&showCommand{a})
	r.Register(&validateCommand{a})
	r.Register(&serveCommand{a})

	// Items
	r.Register(&addItemCommand{a})
	r.Register(&editItemCommand{a})
	r.Register(&removeItemCommand{a})
	r.Register(&itemsCommand{a})

	// Recipes
	r.Register(&addRecipeCommand{a})
	r.Register(&editRecipeCommand{a})
	r.Register(&removeRecipeCommand{a})
	r.Register(&recipesCommand{a})
	r.Register(&profitCommand{a})

	return r
}
