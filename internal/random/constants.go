package random

// pcgStreamSalt derives the PCG stream selector from the seed
const pcgStreamSalt = 0x9e3779b97f4a7c15

// Log messages
const (
	LogMsgFallingBack = "Secure entropy unavailable, using opted-in fallback source"
)

// Error messages
const (
	ErrMsgMinGreaterThanMax = "min cannot be greater than max"
	ErrMsgNegativeCount     = "count cannot be negative"
)
