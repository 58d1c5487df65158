package i18n

// BaseLocale is the locale every catalog key must exist in
const BaseLocale = "en-US"

// Roll status keys
const (
	KeyRollSuccess         = "roll.success"
	KeyRollFailure         = "roll.failure"
	KeyRollCriticalSuccess = "roll.critical.success"
	KeyRollCriticalFailure = "roll.critical.failure"
	KeyCommonSuccess       = "common.success"
	KeyCommonFailure       = "common.failure"
)

// Discord UI keys
const (
	KeyCommandRollName          = "command.roll.name"
	KeyCommandRollDescription   = "command.roll.description"
	KeyCommandStreakName        = "command.streak.name"
	KeyCommandStreakDescription = "command.streak.description"
	KeyOptionExpressionName     = "option.expression.name"
	KeyOptionExpressionDesc     = "option.expression.description"
	KeyOptionUserName           = "option.user.name"
	KeyOptionUserDesc           = "option.user.description"
	KeyButtonReroll             = "button.reroll"
	KeyErrorInvalidExpression   = "error.invalid_expression"
	KeyErrorEntropy             = "error.entropy"
	KeyErrorInternal            = "error.internal"
	KeyStreakNone               = "streak.none"
	KeyStreakTotals             = "streak.totals"
	KeyStreakCurrentSuccess     = "streak.current.success"
	KeyStreakCurrentFailure     = "streak.current.failure"
	KeyStreakLongest            = "streak.longest"
)

// Error messages
const (
	ErrMsgNoCatalogs       = "no locale catalogs found"
	ErrMsgMissingLocale    = "locale is required"
	ErrMsgMissingBase      = "base locale is not defined"
	ErrMsgMissingBaseKey   = "key is missing from the base locale"
	ErrMsgDuplicateLocale  = "locale defined twice"
	ErrMsgConflictingLabel = "label maps to two different keys"
)

const localeGlob = "locales/*.yaml"
