package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Expression errors
	ErrMsgInvalidExpression = "invalid dice expression"
	ErrMsgTooManyDice       = "too many dice"

	// Entropy errors
	ErrMsgEntropyUnavailable = "entropy source unavailable"

	// Attribution errors
	ErrMsgMissingAuthor = "message has no attributable author"

	// Streak errors
	ErrMsgStreakNotFound = "streak not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidExpression  = errors.New(ErrMsgInvalidExpression)
	ErrTooManyDice        = errors.New(ErrMsgTooManyDice)
	ErrEntropyUnavailable = errors.New(ErrMsgEntropyUnavailable)
	ErrMissingAuthor      = errors.New(ErrMsgMissingAuthor)
	ErrStreakNotFound     = errors.New(ErrMsgStreakNotFound)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
