package dice

import (
	"fmt"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// ParseError describes why an expression was rejected.
// Position is a byte offset into the whitespace-stripped expression.
type ParseError struct {
	Expression string
	Position   int
	Reason     string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q at position %d: %s", domain.ErrMsgInvalidExpression, e.Expression, e.Position, e.Reason)
}

// Unwrap exposes the more specific cause, such as domain.ErrTooManyDice
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, domain.ErrInvalidExpression) for every parse failure
func (e *ParseError) Is(target error) bool {
	return target == domain.ErrInvalidExpression
}

func newParseError(expr string, pos int, reason string) *ParseError {
	return &ParseError{Expression: expr, Position: pos, Reason: reason}
}
