// Package streak aggregates classified roll outcomes into per-user statistics
// and streaks.
package streak

import "github.com/osse101/DiceBot_Go/internal/domain"

// Merge folds delta into prior. Totals always accumulate. Runs move only when
// isTrivial is false. A nil prior yields delta as the initial state with runs
// derived from delta regardless of isTrivial.
//
// Merge depends on deltas arriving in chronological order; callers must
// serialize merges per (guild, user).
func Merge(prior *domain.StreakState, delta domain.OutcomeCount, isTrivial bool) domain.StreakState {
	if prior == nil {
		next := domain.StreakState{OutcomeCount: delta}
		extendRun(&next, delta)
		return next
	}

	next := *prior
	next.OutcomeCount = prior.OutcomeCount.Add(delta)
	if !isTrivial {
		extendRun(&next, delta)
	}
	return next
}

// Unmerge subtracts delta from the totals of prior, clamping each counter at
// zero. Consecutive and longest runs are left as they are: run history cannot
// be reconstructed from totals, so retractions may leave them stale.
func Unmerge(prior *domain.StreakState, delta domain.OutcomeCount) domain.StreakState {
	if prior == nil {
		return domain.StreakState{}
	}
	next := *prior
	next.Success = floorSub(prior.Success, delta.Success)
	next.Failure = floorSub(prior.Failure, delta.Failure)
	next.CriticalSuccess = floorSub(prior.CriticalSuccess, delta.CriticalSuccess)
	next.CriticalFailure = floorSub(prior.CriticalFailure, delta.CriticalFailure)
	return next
}

// extendRun applies the polarity of delta to the run counters. Failures take
// precedence when a delta carries both polarities.
func extendRun(s *domain.StreakState, delta domain.OutcomeCount) {
	failures := delta.Failure + delta.CriticalFailure
	successes := delta.Success + delta.CriticalSuccess

	switch {
	case failures > 0:
		s.Consecutive.Failure += failures
		s.Consecutive.Success = 0
		s.LongestStreak.Failure = max(s.LongestStreak.Failure, s.Consecutive.Failure)
	case successes > 0:
		s.Consecutive.Success += successes
		s.Consecutive.Failure = 0
		s.LongestStreak.Success = max(s.LongestStreak.Success, s.Consecutive.Success)
	}
}

func floorSub(a, b int) int {
	return max(0, a-b)
}
