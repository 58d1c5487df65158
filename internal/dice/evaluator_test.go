package dice_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/random"
)

// fixedSource yields raw values that the sampler maps onto chosen faces
type fixedSource struct {
	raw   []uint64
	calls int
}

// face encodes die value v of a die with the given faces so that NextInt(1, faces) returns v
func face(faces, v int) uint64 {
	return uint64(faces + v - 1)
}

func (s *fixedSource) Uint64() (uint64, error) {
	if s.calls >= len(s.raw) {
		return 0, &random.EntropyError{Err: errors.New("exhausted")}
	}
	v := s.raw[s.calls]
	s.calls++
	return v, nil
}

func TestRoll_Deterministic(t *testing.T) {
	src := &fixedSource{raw: []uint64{face(6, 4), face(6, 5), face(4, 2)}}

	result, err := dice.Evaluate("2d6+1d4+3>=12", src)
	require.NoError(t, err)

	assert.Equal(t, "2d6+1d4+3>=12", result.Expression)
	assert.Equal(t, []int{4, 5, 2}, result.Dice, "dice keep roll order")
	require.Len(t, result.Groups, 2)
	assert.Equal(t, []int{4, 5}, result.Groups[0].Values)
	assert.Equal(t, []int{2}, result.Groups[1].Values)
	assert.Equal(t, 3, result.Modifier)
	assert.Equal(t, 14, result.Total)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)
	assert.Equal(t, domain.CriticalNone, result.Critical)
	assert.Equal(t, 3, src.calls, "exactly one sample per die")
}

func TestRoll_SubtractedGroup(t *testing.T) {
	src := &fixedSource{raw: []uint64{face(20, 10), face(4, 3)}}
	result, err := dice.Evaluate("1d20-1d4", src)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, domain.OutcomeNone, result.Outcome)
}

func TestRoll_DiceOrderIsNotSorted(t *testing.T) {
	src := &fixedSource{raw: []uint64{face(6, 6), face(6, 1), face(6, 3)}}
	result, err := dice.Evaluate("3d6", src)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 1, 3}, result.Dice)
}

func TestRoll_CriticalTier(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		raw      []uint64
		outcome  domain.ComparisonOutcome
		critical domain.CriticalTier
	}{
		{
			name:     "natural max is a critical success",
			expr:     "1d20",
			raw:      []uint64{face(20, 20)},
			outcome:  domain.OutcomeNone,
			critical: domain.CriticalSuccess,
		},
		{
			name:     "natural one is a critical failure",
			expr:     "1d20+30>10",
			raw:      []uint64{face(20, 1)},
			outcome:  domain.OutcomeSuccess,
			critical: domain.CriticalFailure,
		},
		{
			name:     "critical is independent of the comparison",
			expr:     "1d20>25",
			raw:      []uint64{face(20, 20)},
			outcome:  domain.OutcomeFailure,
			critical: domain.CriticalSuccess,
		},
		{
			name:     "secondary group never triggers criticals",
			expr:     "1d20+1d6",
			raw:      []uint64{face(20, 10), face(6, 6)},
			outcome:  domain.OutcomeNone,
			critical: domain.CriticalNone,
		},
		{
			name:     "max rolled before a one",
			expr:     "2d6>7",
			raw:      []uint64{face(6, 6), face(6, 1)},
			outcome:  domain.OutcomeFailure,
			critical: domain.CriticalSuccess,
		},
		{
			name:     "one rolled before a max",
			expr:     "2d6>=7",
			raw:      []uint64{face(6, 1), face(6, 6)},
			outcome:  domain.OutcomeSuccess,
			critical: domain.CriticalFailure,
		},
		{
			name:     "both extremes without comparison",
			expr:     "3d6",
			raw:      []uint64{face(6, 3), face(6, 6), face(6, 1)},
			outcome:  domain.OutcomeNone,
			critical: domain.CriticalSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := dice.Evaluate(tt.expr, &fixedSource{raw: tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.critical, result.Critical)
		})
	}
}

// TestRoll_OneD20GreaterThan20 checks every face of the canonical trivial case
func TestRoll_OneD20GreaterThan20(t *testing.T) {
	for v := 1; v <= 20; v++ {
		result, err := dice.Evaluate("1d20>20", &fixedSource{raw: []uint64{face(20, v)}})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeFailure, result.Outcome, "face %d", v)
	}
	assert.True(t, dice.IsTrivial(dice.MustParse("1d20>20")))
}

func TestRoll_EntropyFailure(t *testing.T) {
	_, err := dice.Evaluate("3d6", random.NewReaderSource(bytes.NewReader(nil)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntropyUnavailable)
	assert.NotErrorIs(t, err, domain.ErrInvalidExpression)
}

func TestRoll_UnknownOperator(t *testing.T) {
	expr := dice.MustParse("1d20>=10")
	expr.Comparison = &domain.Comparison{Operator: "!=", Threshold: 10}
	src := &fixedSource{raw: []uint64{face(20, 10)}}

	_, err := dice.Roll(expr, src)

	var parseErr *dice.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, dice.ReasonUnknownOperator, parseErr.Reason)
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
	assert.Zero(t, src.calls, "no entropy consumed for invalid expressions")
}

func TestEvaluate_ParseErrorSurfaces(t *testing.T) {
	src := &fixedSource{}
	_, err := dice.Evaluate("0d6", src)
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
	assert.Zero(t, src.calls, "no entropy consumed for invalid expressions")
}

func TestEvaluate_ThreeD6Bounds(t *testing.T) {
	src := random.NewSeededSource(42)
	for i := 0; i < 2000; i++ {
		result, err := dice.Evaluate("3d6", src)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 3)
		assert.LessOrEqual(t, result.Total, 18)
	}
}

func TestEvaluate_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 20).Draw(rt, "count")
		faces := rapid.IntRange(2, 100).Draw(rt, "faces")
		extra := rapid.IntRange(1, 5).Draw(rt, "extra")
		modifier := rapid.IntRange(-50, 50).Draw(rt, "modifier")
		threshold := rapid.IntRange(-20, 200).Draw(rt, "threshold")
		seed := rapid.Uint64().Draw(rt, "seed")

		text := fmt.Sprintf("%dd%d+%dd6%+d>=%d", count, faces, extra, modifier, threshold)
		expr, err := dice.Parse(text)
		require.NoError(rt, err)

		result, err := dice.Roll(expr, random.NewSeededSource(seed))
		require.NoError(rt, err)

		require.Len(rt, result.Dice, count+extra)
		sum := modifier
		for i, v := range result.Dice {
			limit := 6
			if i < count {
				limit = faces
			}
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, limit)
			sum += v
		}
		assert.Equal(rt, sum, result.Total)

		lo, hi := dice.Bounds(expr)
		assert.GreaterOrEqual(rt, result.Total, lo)
		assert.LessOrEqual(rt, result.Total, hi)

		want := domain.OutcomeFailure
		if result.Total >= threshold {
			want = domain.OutcomeSuccess
		}
		assert.Equal(rt, want, result.Outcome)

		if forced, ok := dice.ForcedOutcome(expr); ok {
			assert.Equal(rt, forced, result.Outcome, "forced outcome must match every roll")
		}

		wantTier := domain.CriticalNone
		for _, v := range result.Dice[:count] {
			if v == faces {
				wantTier = domain.CriticalSuccess
				break
			}
			if v == 1 {
				wantTier = domain.CriticalFailure
				break
			}
		}
		assert.Equal(rt, wantTier, result.Critical, "tier follows the primary dice only")
	})
}

func TestForcedOutcome(t *testing.T) {
	tests := []struct {
		expr    string
		outcome domain.ComparisonOutcome
		ok      bool
	}{
		{"1d20>20", domain.OutcomeFailure, true},
		{"1d20>19", domain.OutcomeNone, false},
		{"1d20>0", domain.OutcomeSuccess, true},
		{"1d20<1", domain.OutcomeFailure, true},
		{"1d20<21", domain.OutcomeSuccess, true},
		{"1d20>=1", domain.OutcomeSuccess, true},
		{"1d20>=21", domain.OutcomeFailure, true},
		{"1d20<=20", domain.OutcomeSuccess, true},
		{"1d20<=0", domain.OutcomeFailure, true},
		{"1d20=25", domain.OutcomeFailure, true},
		{"1d20=10", domain.OutcomeNone, false},
		{"1d6-1d6>=-5", domain.OutcomeSuccess, true},
		{"2d6+3", domain.OutcomeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			outcome, ok := dice.ForcedOutcome(dice.MustParse(tt.expr))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.outcome, outcome)
		})
	}
}

func TestBounds(t *testing.T) {
	lo, hi := dice.Bounds(dice.MustParse("2d6+1d4-1d8+3"))
	assert.Equal(t, 2+1-8+3, lo)
	assert.Equal(t, 12+4-1+3, hi)
}

func TestEvaluator(t *testing.T) {
	ctx := context.Background()

	t.Run("reports trivial comparisons", func(t *testing.T) {
		ev := dice.NewEvaluator(nil, random.NewSeededSource(1))
		eval, err := ev.Evaluate(ctx, "1d20>20")
		require.NoError(t, err)
		assert.True(t, eval.Trivial)
		assert.Equal(t, domain.OutcomeFailure, eval.Result.Outcome)
	})

	t.Run("non trivial comparison", func(t *testing.T) {
		ev := dice.NewEvaluator(nil, random.NewSeededSource(1))
		eval, err := ev.Evaluate(ctx, "1d20>10")
		require.NoError(t, err)
		assert.False(t, eval.Trivial)
	})

	t.Run("honours configured limits", func(t *testing.T) {
		ev := dice.NewEvaluator(dice.NewParser(5, 20), random.NewSeededSource(1))
		_, err := ev.Evaluate(ctx, "6d6")
		assert.ErrorIs(t, err, domain.ErrTooManyDice)
		assert.Equal(t, 5, ev.Parser().MaxDice)
	})

	t.Run("entropy failure", func(t *testing.T) {
		ev := dice.NewEvaluator(nil, random.NewReaderSource(bytes.NewReader(nil)))
		_, err := ev.Evaluate(ctx, "1d6")
		assert.ErrorIs(t, err, domain.ErrEntropyUnavailable)
	})
}
