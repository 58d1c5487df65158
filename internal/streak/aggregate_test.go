package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

var (
	oneSuccess  = domain.OutcomeCount{Success: 1}
	oneFailure  = domain.OutcomeCount{Failure: 1}
	critFailure = domain.OutcomeCount{Failure: 1, CriticalFailure: 1}
)

func TestMerge_AbsentPrior(t *testing.T) {
	tests := []struct {
		name        string
		delta       domain.OutcomeCount
		trivial     bool
		consecutive domain.StreakPair
		longest     domain.StreakPair
	}{
		{"success", domain.OutcomeCount{Success: 2}, false, domain.StreakPair{Success: 2}, domain.StreakPair{Success: 2}},
		{"critical failure counts twice", critFailure, false, domain.StreakPair{Failure: 2}, domain.StreakPair{Failure: 2}},
		{"trivial flag ignored without prior", oneFailure, true, domain.StreakPair{Failure: 1}, domain.StreakPair{Failure: 1}},
		{"empty delta", domain.OutcomeCount{}, false, domain.StreakPair{}, domain.StreakPair{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(nil, tt.delta, tt.trivial)
			assert.Equal(t, tt.delta, got.OutcomeCount)
			assert.Equal(t, tt.consecutive, got.Consecutive)
			assert.Equal(t, tt.longest, got.LongestStreak)
		})
	}
}

func TestMerge_Runs(t *testing.T) {
	t.Run("failure run extends", func(t *testing.T) {
		s := Merge(nil, oneFailure, false)
		s = Merge(&s, critFailure, false)
		assert.Equal(t, domain.StreakPair{Failure: 3}, s.Consecutive)
		assert.Equal(t, domain.StreakPair{Failure: 3}, s.LongestStreak)
		assert.Equal(t, domain.OutcomeCount{Failure: 2, CriticalFailure: 1}, s.OutcomeCount)
	})

	t.Run("success resets failure run and keeps longest", func(t *testing.T) {
		s := Merge(nil, domain.OutcomeCount{Failure: 4}, false)
		s = Merge(&s, domain.OutcomeCount{Success: 2}, false)
		assert.Equal(t, domain.StreakPair{Success: 2}, s.Consecutive)
		assert.Equal(t, domain.StreakPair{Success: 2, Failure: 4}, s.LongestStreak)
	})

	t.Run("mixed delta counts as failure", func(t *testing.T) {
		s := Merge(nil, domain.OutcomeCount{Success: 3}, false)
		s = Merge(&s, domain.OutcomeCount{Success: 1, Failure: 1}, false)
		assert.Equal(t, domain.StreakPair{Failure: 1}, s.Consecutive)
		assert.Equal(t, 4, s.Success)
	})

	t.Run("trivial delta moves totals only", func(t *testing.T) {
		s := Merge(nil, domain.OutcomeCount{Success: 3}, false)
		s = Merge(&s, domain.OutcomeCount{Failure: 5}, true)
		assert.Equal(t, domain.StreakPair{Success: 3}, s.Consecutive)
		assert.Equal(t, domain.StreakPair{Success: 3}, s.LongestStreak)
		assert.Equal(t, 5, s.Failure)
	})

	t.Run("empty delta is a no-op", func(t *testing.T) {
		s := Merge(nil, oneSuccess, false)
		got := Merge(&s, domain.OutcomeCount{}, false)
		assert.Equal(t, s, got)
	})

	t.Run("prior is not mutated", func(t *testing.T) {
		s := Merge(nil, oneSuccess, false)
		before := s
		_ = Merge(&s, oneFailure, false)
		assert.Equal(t, before, s)
	})
}

func TestUnmerge(t *testing.T) {
	s := domain.StreakState{
		OutcomeCount:  domain.OutcomeCount{Success: 3, Failure: 1, CriticalSuccess: 1},
		Consecutive:   domain.StreakPair{Success: 2},
		LongestStreak: domain.StreakPair{Success: 2, Failure: 1},
	}

	got := Unmerge(&s, domain.OutcomeCount{Success: 1, Failure: 5, CriticalSuccess: 1, CriticalFailure: 1})
	assert.Equal(t, domain.OutcomeCount{Success: 2}, got.OutcomeCount)
	assert.Equal(t, s.Consecutive, got.Consecutive, "runs are not reversed")
	assert.Equal(t, s.LongestStreak, got.LongestStreak)

	assert.Equal(t, domain.StreakState{}, Unmerge(nil, oneSuccess))
}

func outcomeCountGen() *rapid.Generator[domain.OutcomeCount] {
	return rapid.Custom(func(t *rapid.T) domain.OutcomeCount {
		return domain.OutcomeCount{
			Success:         rapid.IntRange(0, 20).Draw(t, "success"),
			Failure:         rapid.IntRange(0, 20).Draw(t, "failure"),
			CriticalSuccess: rapid.IntRange(0, 20).Draw(t, "critical_success"),
			CriticalFailure: rapid.IntRange(0, 20).Draw(t, "critical_failure"),
		}
	})
}

func failureOnlyGen() *rapid.Generator[domain.OutcomeCount] {
	return rapid.Custom(func(t *rapid.T) domain.OutcomeCount {
		return domain.OutcomeCount{
			Failure:         rapid.IntRange(1, 20).Draw(t, "failure"),
			CriticalFailure: rapid.IntRange(0, 20).Draw(t, "critical_failure"),
		}
	})
}

func stateGen() *rapid.Generator[domain.StreakState] {
	return rapid.Custom(func(t *rapid.T) domain.StreakState {
		var s *domain.StreakState
		for _, d := range rapid.SliceOfN(outcomeCountGen(), 0, 10).Draw(t, "history") {
			next := Merge(s, d, rapid.Bool().Draw(t, "trivial"))
			s = &next
		}
		if s == nil {
			return domain.StreakState{}
		}
		return *s
	})
}

func TestMerge_FailureRunProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := failureOnlyGen().Draw(t, "a")
		b := failureOnlyGen().Draw(t, "b")

		first := Merge(nil, a, false)
		got := Merge(&first, b, false)

		run := a.Failure + a.CriticalFailure + b.Failure + b.CriticalFailure
		assert.Equal(t, run, got.Consecutive.Failure)
		assert.Equal(t, run, got.LongestStreak.Failure)
		assert.Zero(t, got.Consecutive.Success)
	})
}

func TestMerge_TrivialNeverMovesRuns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stateGen().Draw(t, "state")
		d := outcomeCountGen().Draw(t, "delta")

		got := Merge(&s, d, true)
		assert.Equal(t, s.Consecutive, got.Consecutive)
		assert.Equal(t, s.LongestStreak, got.LongestStreak)
		assert.Equal(t, s.OutcomeCount.Add(d), got.OutcomeCount)
	})
}

func TestMerge_AtMostOneRunActive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stateGen().Draw(t, "state")
		assert.False(t, s.Consecutive.Success > 0 && s.Consecutive.Failure > 0)
		assert.GreaterOrEqual(t, s.LongestStreak.Success, s.Consecutive.Success)
		assert.GreaterOrEqual(t, s.LongestStreak.Failure, s.Consecutive.Failure)
	})
}

func TestMerge_SuccessAfterFailureRun(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		failures := failureOnlyGen().Draw(t, "failures")
		success := rapid.IntRange(1, 20).Draw(t, "success")

		s := Merge(nil, failures, false)
		longest := s.LongestStreak.Failure
		got := Merge(&s, domain.OutcomeCount{Success: success}, false)

		assert.Zero(t, got.Consecutive.Failure)
		assert.Equal(t, success, got.Consecutive.Success)
		assert.Equal(t, longest, got.LongestStreak.Failure)
	})
}

func TestUnmerge_NeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stateGen().Draw(t, "state")
		d := outcomeCountGen().Draw(t, "delta")

		got := Unmerge(&s, d)
		assert.GreaterOrEqual(t, got.Success, 0)
		assert.GreaterOrEqual(t, got.Failure, 0)
		assert.GreaterOrEqual(t, got.CriticalSuccess, 0)
		assert.GreaterOrEqual(t, got.CriticalFailure, 0)
	})
}
