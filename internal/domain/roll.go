package domain

import "fmt"

// ComparisonOperator is the relational operator of a roll comparison
type ComparisonOperator string

const (
	OpGreater      ComparisonOperator = ">"
	OpLess         ComparisonOperator = "<"
	OpGreaterEqual ComparisonOperator = ">="
	OpLessEqual    ComparisonOperator = "<="
	OpEqual        ComparisonOperator = "="
)

// Holds reports whether "total op threshold" is true
func (op ComparisonOperator) Holds(total, threshold int) bool {
	switch op {
	case OpGreater:
		return total > threshold
	case OpLess:
		return total < threshold
	case OpGreaterEqual:
		return total >= threshold
	case OpLessEqual:
		return total <= threshold
	case OpEqual:
		return total == threshold
	default:
		return false
	}
}

// Valid reports whether op is one of the supported operators
func (op ComparisonOperator) Valid() bool {
	switch op {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpEqual:
		return true
	}
	return false
}

// Comparison is the optional "<op><threshold>" suffix of an expression
type Comparison struct {
	Operator  ComparisonOperator `json:"operator"`
	Threshold int                `json:"threshold"`
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s %d", c.Operator, c.Threshold)
}

// ComparisonOutcome is the result of checking a total against a Comparison
type ComparisonOutcome string

const (
	OutcomeNone    ComparisonOutcome = "none"
	OutcomeSuccess ComparisonOutcome = "success"
	OutcomeFailure ComparisonOutcome = "failure"
)

// CriticalTier classifies extreme die faces in the primary group
type CriticalTier string

const (
	CriticalNone    CriticalTier = "none"
	CriticalSuccess CriticalTier = "critical_success"
	CriticalFailure CriticalTier = "critical_failure"
)

// DiceGroup is "count d faces". Sign is -1 for subtracted groups.
type DiceGroup struct {
	Count int `json:"count"`
	Faces int `json:"faces"`
	Sign  int `json:"sign"`
}

// DiceExpression is a parsed, immutable dice notation.
// Groups[0] is the primary group and governs critical detection.
type DiceExpression struct {
	Raw        string      `json:"raw"`
	Groups     []DiceGroup `json:"groups"`
	Modifier   int         `json:"modifier"`
	Comparison *Comparison `json:"comparison,omitempty"`
}

// DiceCount returns the number of dice across all groups
func (e DiceExpression) DiceCount() int {
	n := 0
	for _, g := range e.Groups {
		n += g.Count
	}
	return n
}

// GroupRoll holds the faces rolled for one group, in roll order
type GroupRoll struct {
	Group  DiceGroup `json:"group"`
	Values []int     `json:"values"`
}

// RollResult is the outcome of evaluating a DiceExpression.
// Dice lists every die value in roll order and is never re-sorted.
type RollResult struct {
	Expression string            `json:"expression"`
	Dice       []int             `json:"dice"`
	Groups     []GroupRoll       `json:"groups"`
	Modifier   int               `json:"modifier"`
	Total      int               `json:"total"`
	Comparison *Comparison       `json:"comparison,omitempty"`
	Outcome    ComparisonOutcome `json:"outcome"`
	Critical   CriticalTier      `json:"critical"`
}

// HasComparison reports whether a comparison was evaluated
func (r RollResult) HasComparison() bool {
	return r.Comparison != nil
}
