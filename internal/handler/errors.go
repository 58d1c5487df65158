package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidExpression   = "Invalid dice expression"
	ErrMsgTooManyDice         = "Too many dice in expression"
	ErrMsgEntropyUnavailable  = "Dice are unavailable right now. Please try again later."
	ErrMsgStreakNotFound      = "No streak recorded for that user"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgRequestCancelled    = "Request cancelled"
	ErrMsgIterationsExceedMax = "iterations exceeds maximum (%d)"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseFailed = "database connection failed"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgValidationFailed   = "Request validation failed"
	LogMsgRollFailed         = "Roll failed"
	LogMsgRollServed         = "Roll served"
	LogMsgStreakUpdateFailed = "Streak update failed"
	LogMsgMessageProcessed   = "Message processed"
	LogMsgHistogramFailed    = "Histogram failed"
	LogMsgHistogramServed    = "Histogram served"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
)

// Content types and query parameters
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	QueryGuildID    = "guild_id"
	QueryUserID     = "user_id"
	QueryExpression = "expression"
	QueryIterations = "iterations"
	QueryWorkers    = "workers"
	QuerySeed       = "seed"
	QueryFormat     = "format"

	FormatJSON = "json"
	FormatCSV  = "csv"

	DefaultHistogramIterations = 10000
)
