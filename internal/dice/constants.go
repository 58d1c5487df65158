package dice

// Parser limits
const (
	// DefaultMaxDice caps the number of dice one expression may roll
	DefaultMaxDice = 1000
	// DefaultMaxFaces caps the faces of a single die
	DefaultMaxFaces = 10000
	// MinFaces is the smallest die that produces a random value
	MinFaces = 2
	// DefaultMaxModifier caps the flat modifier and the threshold so totals
	// and bounds cannot overflow
	DefaultMaxModifier = 1_000_000
)

// Parse error reasons
const (
	ReasonEmpty             = "empty expression"
	ReasonNoDice            = "expression has no dice group"
	ReasonZeroDice          = "dice count must be at least 1"
	ReasonTooFewFaces       = "dice must have at least 2 faces"
	ReasonTooManyFaces      = "dice have too many faces"
	ReasonTooManyDice       = "expression rolls too many dice"
	ReasonMissingFaces      = "missing faces after 'd'"
	ReasonMissingTerm       = "expected a dice group or number"
	ReasonUnexpectedChar    = "unexpected character"
	ReasonMissingThreshold  = "comparator has no threshold"
	ReasonInvalidThreshold  = "invalid threshold"
	ReasonNumberOutOfRange  = "number out of range"
	ReasonDuplicateOperator = "more than one comparator"
	ReasonUnknownOperator   = "unknown comparator"
)

// Log messages
const (
	LogMsgRollEvaluated = "Dice roll evaluated"
	LogMsgParseFailed   = "Dice expression rejected"
	LogMsgEntropyFailed = "Dice roll aborted: entropy unavailable"
)
