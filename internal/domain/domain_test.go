package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonOperator_Holds(t *testing.T) {
	tests := []struct {
		op        ComparisonOperator
		total     int
		threshold int
		want      bool
	}{
		{OpGreater, 11, 10, true},
		{OpGreater, 10, 10, false},
		{OpLess, 9, 10, true},
		{OpLess, 10, 10, false},
		{OpGreaterEqual, 10, 10, true},
		{OpGreaterEqual, 9, 10, false},
		{OpLessEqual, 10, 10, true},
		{OpLessEqual, 11, 10, false},
		{OpEqual, 10, 10, true},
		{OpEqual, 11, 10, false},
		{ComparisonOperator("!="), 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Holds(tt.total, tt.threshold))
		})
	}
}

func TestComparisonOperator_Valid(t *testing.T) {
	for _, op := range []ComparisonOperator{OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpEqual} {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, ComparisonOperator("=>").Valid())
	assert.False(t, ComparisonOperator("").Valid())
}

func TestComparison_String(t *testing.T) {
	assert.Equal(t, ">= 10", Comparison{Operator: OpGreaterEqual, Threshold: 10}.String())
	assert.Equal(t, "< -2", Comparison{Operator: OpLess, Threshold: -2}.String())
}

func TestDiceExpression_DiceCount(t *testing.T) {
	expr := DiceExpression{Groups: []DiceGroup{
		{Count: 2, Faces: 6, Sign: 1},
		{Count: 1, Faces: 4, Sign: -1},
	}}
	assert.Equal(t, 3, expr.DiceCount())
	assert.Zero(t, DiceExpression{}.DiceCount())
}

func TestOutcomeCount(t *testing.T) {
	assert.True(t, OutcomeCount{}.IsZero())

	a := OutcomeCount{Success: 1, CriticalSuccess: 1}
	b := OutcomeCount{Success: 2, Failure: 1, CriticalFailure: 1}
	sum := a.Add(b)

	assert.False(t, sum.IsZero())
	assert.Equal(t, OutcomeCount{Success: 3, Failure: 1, CriticalSuccess: 1, CriticalFailure: 1}, sum)
}

func TestStreakState_Key(t *testing.T) {
	s := StreakState{GuildID: "g", UserID: "u"}
	assert.Equal(t, StreakKey{GuildID: "g", UserID: "u"}, s.Key())
	assert.Equal(t, "g:u", s.Key().String())
}
