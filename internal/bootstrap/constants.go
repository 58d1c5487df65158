package bootstrap

import "time"

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 10 * time.Second
)

// =============================================================================
// Log Messages
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingDiceBot     = "Starting DiceBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for storage and services
const (
	LogMsgUsingMemoryStorage   = "Using in-memory streak storage; statistics are lost on restart"
	LogMsgUsingPostgresStorage = "Using Postgres streak storage"
	LogMsgDiscordDisabled      = "DISCORD_TOKEN not set, Discord bot disabled"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingBot          = "Stopping Discord bot..."
	LogMsgClosingStorage       = "Closing storage..."
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgConnectDatabase  = "failed to connect to database: %w"
	ErrMsgMigrateDatabase  = "failed to migrate database: %w"
	ErrMsgUnknownStorage   = "unknown storage backend %q"
	ErrMsgCreateDiscordBot = "failed to create Discord bot: %w"
)
