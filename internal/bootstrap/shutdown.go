package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Catalog catalog.Service
	// SaveOnExit writes the database once more after the server stops.
	// It is set when autosave is on, so a change whose autosave failed is
	// retried instead of being lost.
	SaveOnExit bool
}

// GracefulShutdown stops the HTTP server first so no new mutation arrives,
// then optionally saves the database.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SaveOnExit && components.Catalog != nil {
		slog.Info(LogMsgFinalSave)
		if err := components.Catalog.Save(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
