package dice

import (
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/random"
)

// Evaluate parses expression with the default limits and rolls it using src.
//
// Postcondition: result.Total == sum(signed dice) + result.Modifier.
func Evaluate(expression string, src random.Source) (domain.RollResult, error) {
	expr, err := Parse(expression)
	if err != nil {
		return domain.RollResult{}, err
	}
	return Roll(expr, src)
}

// Roll evaluates a parsed expression, drawing exactly one sample per die in textual order.
// An entropy failure aborts the roll with an error matching domain.ErrEntropyUnavailable.
// Hand-built expressions with an unknown comparator are rejected as parse errors.
func Roll(expr domain.DiceExpression, src random.Source) (domain.RollResult, error) {
	if expr.Comparison != nil && !expr.Comparison.Operator.Valid() {
		return domain.RollResult{}, newParseError(expr.Raw, 0, ReasonUnknownOperator)
	}

	sampler := random.NewSampler(src)

	result := domain.RollResult{
		Expression: expr.Raw,
		Dice:       make([]int, 0, expr.DiceCount()),
		Groups:     make([]domain.GroupRoll, 0, len(expr.Groups)),
		Modifier:   expr.Modifier,
		Comparison: expr.Comparison,
		Outcome:    domain.OutcomeNone,
		Critical:   domain.CriticalNone,
	}

	total := expr.Modifier
	for _, g := range expr.Groups {
		values := make([]int, g.Count)
		for i := range values {
			v, err := sampler.NextInt(1, g.Faces)
			if err != nil {
				return domain.RollResult{}, err
			}
			values[i] = v
			total += g.Sign * v
		}
		result.Groups = append(result.Groups, domain.GroupRoll{Group: g, Values: values})
		result.Dice = append(result.Dice, values...)
	}
	result.Total = total

	if expr.Comparison != nil {
		if expr.Comparison.Operator.Holds(total, expr.Comparison.Threshold) {
			result.Outcome = domain.OutcomeSuccess
		} else {
			result.Outcome = domain.OutcomeFailure
		}
	}

	if len(result.Groups) > 0 {
		result.Critical = criticalTier(result.Groups[0])
	}
	return result, nil
}

// criticalTier inspects the primary group only. When the group shows both a
// maximum face and a 1, the extreme rolled first wins.
func criticalTier(primary domain.GroupRoll) domain.CriticalTier {
	for _, v := range primary.Values {
		switch v {
		case primary.Group.Faces:
			return domain.CriticalSuccess
		case 1:
			return domain.CriticalFailure
		}
	}
	return domain.CriticalNone
}
