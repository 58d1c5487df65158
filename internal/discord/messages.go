package discord

// Command and component identifiers
const (
	CommandRoll      = "roll"
	CommandStreak    = "streak"
	OptionExpression = "expression"
	OptionUser       = "user"

	// RerollPrefix starts the custom ID of reroll buttons; the expression follows it
	RerollPrefix = "dice:reroll:"
	// MaxCustomIDLength is the Discord limit on component custom IDs
	MaxCustomIDLength = 100
	// MaxExpressionLength matches the longest expression the HTTP API accepts
	MaxExpressionLength = 200
)

// State cache size used to recover message content on edits and deletes
const DefaultMessageCacheSize = 500

// Log messages
const (
	LogMsgBotStarted        = "Discord bot is now running"
	LogMsgBotStopped        = "Discord bot stopped"
	LogMsgBotReady          = "Bot is ready"
	LogMsgCheckingCommands  = "Checking Discord commands..."
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdating  = "Commands changed, updating..."
	LogMsgCommandsUpdated   = "Commands updated successfully"
	LogMsgCommandsForced    = "Force update enabled - replacing all commands"
	LogMsgUnknownCommand    = "Unknown interaction"
	LogMsgRespondFailed     = "Failed to respond to interaction"
	LogMsgRollFailed        = "Roll failed"
	LogMsgStreakFailed      = "Failed to load streak"
	LogMsgRecordFailed      = "Failed to record roll message"
	LogMsgRetractFailed     = "Failed to retract roll message"
	LogMsgReviseFailed      = "Failed to revise roll message"
	LogMsgMissingBefore     = "Edited or deleted message not in state cache, skipping"
	LogMsgRerollTooLong     = "Expression too long for a reroll button"
)

// Error messages
const (
	ErrMsgCreateSession  = "error creating Discord session: %w"
	ErrMsgOpenConnection = "error opening connection: %w"
	ErrMsgFetchCommands  = "failed to fetch existing commands: %w"
	ErrMsgOverwrite      = "failed to bulk overwrite commands: %w"
	ErrMsgUpdateCommands = "failed to update commands: %w"
	ErrMsgNotConnected   = "discord session is not connected"
	ErrMsgMissingToken   = "discord token is required"
	ErrMsgMissingAppID   = "discord application id is required"
)
