package postgres

// Advisory lock key derivation
const (
	// StreakLockSeparator joins guild and user ids before hashing
	StreakLockSeparator = "\x00"
	// HashMaskPositiveInt64 clears the sign bit of the derived lock key
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL Query Constants
const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectStreak loads one streak state
	SQLSelectStreak = `
		SELECT success, failure, critical_success, critical_failure,
		       consecutive_success, consecutive_failure,
		       longest_success, longest_failure, updated_at
		FROM streak_states
		WHERE guild_id = $1 AND user_id = $2`

	// SQLUpsertStreak writes one streak state
	SQLUpsertStreak = `
		INSERT INTO streak_states (
			guild_id, user_id, success, failure, critical_success, critical_failure,
			consecutive_success, consecutive_failure, longest_success, longest_failure, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (guild_id, user_id) DO UPDATE SET
			success = EXCLUDED.success,
			failure = EXCLUDED.failure,
			critical_success = EXCLUDED.critical_success,
			critical_failure = EXCLUDED.critical_failure,
			consecutive_success = EXCLUDED.consecutive_success,
			consecutive_failure = EXCLUDED.consecutive_failure,
			longest_success = EXCLUDED.longest_success,
			longest_failure = EXCLUDED.longest_failure,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	// SQLDeleteStreak removes one streak state
	SQLDeleteStreak = `DELETE FROM streak_states WHERE guild_id = $1 AND user_id = $2`
)

// Error Messages - Streak Operations
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgSelectStreakFailed      = "failed to select streak: %w"
	ErrMsgUpsertStreakFailed      = "failed to upsert streak: %w"
	ErrMsgDeleteStreakFailed      = "failed to delete streak: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
