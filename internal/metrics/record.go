package metrics

import (
	"strconv"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// RecordRoll updates the dice counters for one evaluated roll
func RecordRoll(result domain.RollResult) {
	RollsEvaluated.WithLabelValues(string(result.Outcome), string(result.Critical)).Inc()
	DiceRolled.Add(float64(len(result.Dice)))
}

// RecordOutcomes updates the classification counters for one message
func RecordOutcomes(count domain.OutcomeCount) {
	add := func(kind string, n int) {
		if n > 0 {
			OutcomesClassified.WithLabelValues(kind).Add(float64(n))
		}
	}
	add(KindSuccess, count.Success)
	add(KindFailure, count.Failure)
	add(KindCriticalSuccess, count.CriticalSuccess)
	add(KindCriticalFailure, count.CriticalFailure)
}

// RecordMerge counts one streak merge
func RecordMerge(trivial bool) {
	StreakMerges.WithLabelValues(strconv.FormatBool(trivial)).Inc()
}
