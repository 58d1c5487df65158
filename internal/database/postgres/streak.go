package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/repository"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// StreakRepository implements the streak repository for PostgreSQL
type StreakRepository struct {
	pool *pgxpool.Pool
}

// NewStreakRepository creates a new StreakRepository
func NewStreakRepository(pool *pgxpool.Pool) streak.Repository {
	return &StreakRepository{pool: pool}
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetStreak returns the stored state or nil when none exists
func (r *StreakRepository) GetStreak(ctx context.Context, key domain.StreakKey) (*domain.StreakState, error) {
	return selectStreak(ctx, r.pool, key)
}

// UpdateStreak loads, transforms and stores a state inside one transaction.
// An advisory lock on the key serializes writers even before the row exists.
func (r *StreakRepository) UpdateStreak(ctx context.Context, key domain.StreakKey, fn repository.StreakUpdateFunc) (*domain.StreakState, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashStreakKey(key)); err != nil {
		return nil, fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	prior, err := selectStreak(ctx, tx, key)
	if err != nil {
		return nil, err
	}

	next, err := fn(prior)
	if err != nil {
		return nil, err
	}
	next.GuildID = key.GuildID
	next.UserID = key.UserID

	err = tx.QueryRow(ctx, SQLUpsertStreak,
		key.GuildID, key.UserID,
		next.Success, next.Failure, next.CriticalSuccess, next.CriticalFailure,
		next.Consecutive.Success, next.Consecutive.Failure,
		next.LongestStreak.Success, next.LongestStreak.Failure,
	).Scan(&next.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertStreakFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return &next, nil
}

// DeleteStreak removes the stored state, if any
func (r *StreakRepository) DeleteStreak(ctx context.Context, key domain.StreakKey) error {
	if _, err := r.pool.Exec(ctx, SQLDeleteStreak, key.GuildID, key.UserID); err != nil {
		return fmt.Errorf(ErrMsgDeleteStreakFailed, err)
	}
	return nil
}

func selectStreak(ctx context.Context, q querier, key domain.StreakKey) (*domain.StreakState, error) {
	s := domain.StreakState{GuildID: key.GuildID, UserID: key.UserID}
	err := q.QueryRow(ctx, SQLSelectStreak, key.GuildID, key.UserID).Scan(
		&s.Success, &s.Failure, &s.CriticalSuccess, &s.CriticalFailure,
		&s.Consecutive.Success, &s.Consecutive.Failure,
		&s.LongestStreak.Success, &s.LongestStreak.Failure,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectStreakFailed, err)
	}
	return &s, nil
}

func hashStreakKey(key domain.StreakKey) int64 {
	h := sha256.Sum256([]byte(key.GuildID + StreakLockSeparator + key.UserID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
