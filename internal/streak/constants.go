package streak

import "time"

// DefaultBucketWidth is the width of a trivial cache time bucket
const DefaultBucketWidth = time.Minute

// DefaultTrivialCacheSize bounds the number of trivial markers held in memory
const DefaultTrivialCacheSize = 10000

// Log messages
const (
	LogMsgNothingToRecord = "Message has no roll outcomes"
	LogMsgUnattributed    = "Roll message has no attributable author, skipping"
	LogMsgStreakMerged    = "Streak merged"
	LogMsgStreakRetracted = "Streak retracted"
	LogMsgStreakRevised   = "Streak revised"
	LogMsgTrivialMarked   = "Trivial roll marked"
	LogMsgUpdateFailed    = "Failed to update streak"
	LogMsgRetractNoState  = "No streak to retract from"
)

// Error messages
const (
	ErrMsgUpdateStreakFailed = "failed to update streak: %w"
	ErrMsgGetStreakFailed    = "failed to get streak: %w"
	ErrMsgUserIDRequired     = "user id is required"
)
