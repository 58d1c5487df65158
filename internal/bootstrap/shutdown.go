package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DiceBot_Go/internal/discord"
	"github.com/osse101/DiceBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Bot and Storage may be nil.
type ShutdownComponents struct {
	Server  *server.Server
	Bot     *discord.Bot
	Storage *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Discord bot (stop receiving interactions and message events)
// 3. Storage (nothing writes streaks anymore)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		slog.Info(LogMsgStoppingBot, "health", components.Bot.Health())
		components.Bot.Stop()
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
