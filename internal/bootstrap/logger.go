package bootstrap

import (
	"log/slog"

	"github.com/osse101/DiceBot_Go/internal/config"
	"github.com/osse101/DiceBot_Go/internal/logger"
)

// SetupLogger initializes the process-wide structured logger from cfg and logs
// the startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingDiceBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.Storage)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"dice_max_dice", cfg.DiceMaxDice,
		"dice_max_faces", cfg.DiceMaxFaces,
		"default_locale", cfg.DefaultLocale,
		"discord_enabled", cfg.DiscordEnabled())
}
