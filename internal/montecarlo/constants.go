package montecarlo

// CSV layout
const (
	CSVSeparator     = ';'
	HeaderValue      = "value"
	HeaderCount      = "count"
	HeaderPercentage = "percentage"
	PercentageFormat = "%.4f"
)

// Error messages
const (
	ErrMsgIterations = "iterations must be positive"
	ErrMsgWriteCSV   = "failed to write histogram: %w"
)

// Log messages
const (
	LogMsgRunStarted   = "Simulation started"
	LogMsgRunFinished  = "Simulation finished"
	LogMsgRunCancelled = "Simulation cancelled"
)
