package dice

import "github.com/osse101/DiceBot_Go/internal/domain"

// Bounds returns the smallest and largest total expr can produce.
// Every integer in between is reachable.
func Bounds(expr domain.DiceExpression) (lo, hi int) {
	lo, hi = expr.Modifier, expr.Modifier
	for _, g := range expr.Groups {
		if g.Sign < 0 {
			lo -= g.Count * g.Faces
			hi -= g.Count
			continue
		}
		lo += g.Count
		hi += g.Count * g.Faces
	}
	return lo, hi
}

// ForcedOutcome reports the comparison outcome when it is the same for every
// possible total, e.g. "1d20>20" always fails. ok is false when the dice matter
// or there is no comparison.
func ForcedOutcome(expr domain.DiceExpression) (outcome domain.ComparisonOutcome, ok bool) {
	if expr.Comparison == nil {
		return domain.OutcomeNone, false
	}
	lo, hi := Bounds(expr)
	th := expr.Comparison.Threshold

	var always, never bool
	switch expr.Comparison.Operator {
	case domain.OpGreater:
		always, never = lo > th, hi <= th
	case domain.OpLess:
		always, never = hi < th, lo >= th
	case domain.OpGreaterEqual:
		always, never = lo >= th, hi < th
	case domain.OpLessEqual:
		always, never = hi <= th, lo > th
	case domain.OpEqual:
		always, never = lo == th && hi == th, th < lo || th > hi
	}

	switch {
	case always:
		return domain.OutcomeSuccess, true
	case never:
		return domain.OutcomeFailure, true
	default:
		return domain.OutcomeNone, false
	}
}

// IsTrivial reports whether the comparison of expr is decided before any die is rolled
func IsTrivial(expr domain.DiceExpression) bool {
	_, ok := ForcedOutcome(expr)
	return ok
}
