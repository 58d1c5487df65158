package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DiceBot_Go/internal/bootstrap"
	"github.com/osse101/DiceBot_Go/internal/config"
	"github.com/osse101/DiceBot_Go/internal/logger"
)

// @title DiceBot API
// @version 1.0
// @description Dice notation rolls, roll streaks and Monte-Carlo histograms for chat bots.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("DiceBot exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	svc := bootstrap.InitializeServices(cfg, storage)

	bot, err := bootstrap.NewBot(cfg, svc)
	if err != nil {
		storage.Close()
		return err
	}

	ready := bootstrap.Readiness{storage}
	if bot != nil {
		if err := bot.Start(cfg.DiscordForceCommandUpdate); err != nil {
			// the HTTP API keeps serving without the bot
			slog.Error("Failed to start Discord bot", "error", err)
			bot = nil
		} else {
			ready = append(ready, bot)
		}
	}

	srv := bootstrap.NewServer(cfg, svc, ready)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "port", cfg.Port)
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Bot:     bot,
		Storage: storage,
	})
	return err
}
