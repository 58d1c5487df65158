package domain

import "time"

// OutcomeCount tallies outcomes extracted from one rendered message.
// Critical counters are refinements: a critical success is also counted in Success.
type OutcomeCount struct {
	Success         int `json:"success"`
	Failure         int `json:"failure"`
	CriticalSuccess int `json:"critical_success"`
	CriticalFailure int `json:"critical_failure"`
}

// IsZero reports whether nothing was counted
func (c OutcomeCount) IsZero() bool {
	return c == OutcomeCount{}
}

// Add returns the element-wise sum of c and other
func (c OutcomeCount) Add(other OutcomeCount) OutcomeCount {
	return OutcomeCount{
		Success:         c.Success + other.Success,
		Failure:         c.Failure + other.Failure,
		CriticalSuccess: c.CriticalSuccess + other.CriticalSuccess,
		CriticalFailure: c.CriticalFailure + other.CriticalFailure,
	}
}

// StreakPair holds a success/failure pair of run lengths
type StreakPair struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// StreakKey identifies the owner of a StreakState
type StreakKey struct {
	GuildID string `json:"guild_id"`
	UserID  string `json:"user_id"`
}

func (k StreakKey) String() string {
	return k.GuildID + ":" + k.UserID
}

// StreakState is the persisted per-(guild, user) statistics record.
// At most one of Consecutive.Success and Consecutive.Failure is non-zero.
type StreakState struct {
	GuildID string `json:"guild_id"`
	UserID  string `json:"user_id"`

	OutcomeCount

	Consecutive   StreakPair `json:"consecutive"`
	LongestStreak StreakPair `json:"longest_streak"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the storage key of the state
func (s StreakState) Key() StreakKey {
	return StreakKey{GuildID: s.GuildID, UserID: s.UserID}
}
