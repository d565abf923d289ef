package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/config"
	"github.com/osse101/CraftingDB_Go/internal/server"
)

// ServerConfig maps the application config onto server.Config
func ServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}
}

// Serve runs the HTTP API over svc until ctx is cancelled, then shuts down
// gracefully. It fails fast when no API key is configured.
func Serve(ctx context.Context, cfg *config.Config, svc catalog.Service) error {
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	srv := server.NewServer(ServerConfig(cfg), svc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:     srv,
		Catalog:    svc,
		SaveOnExit: cfg.Autosave,
	})
	return nil
}
