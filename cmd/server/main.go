//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init -d ../.. -g cmd/server/main.go -o ../../docs

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftingDB_Go/internal/bootstrap"
	"github.com/osse101/CraftingDB_Go/internal/config"
)

// @title CraftingDB API
// @version 1.0
// @description Items, recipes and profit over one crafting reference database.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.OpenCatalog(ctx, cfg, "")
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.Serve(ctx, cfg, svc); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
