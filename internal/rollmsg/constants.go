package rollmsg

// Status label keys looked up through the Translator
const (
	KeyRollSuccess         = "roll.success"
	KeyRollFailure         = "roll.failure"
	KeyRollCriticalSuccess = "roll.critical.success"
	KeyRollCriticalFailure = "roll.critical.failure"
	KeyCommonSuccess       = "common.success"
	KeyCommonFailure       = "common.failure"
)

// Message layout
const (
	DefaultDelimiter = "**"
	Arrow            = "⟶"
	Dash             = "—"
	DiceSeparator    = ", "
)

// Invisible spacers chat clients use to keep a leading space from being trimmed
const (
	SpacerZeroWidth   = "\u200b"
	SpacerWordJoiner  = "\u2060"
	SpacerHangulBlank = "\u3164"
)

// DefaultSpacers are skipped before the status label
var DefaultSpacers = []string{SpacerZeroWidth, SpacerWordJoiner, SpacerHangulBlank}
