package streak

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	key := domain.StreakKey{GuildID: "g", UserID: "u"}

	repo := NewMemoryRepository()

	got, err := repo.GetStreak(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	state, err := repo.UpdateStreak(ctx, key, func(prior *domain.StreakState) (domain.StreakState, error) {
		assert.Nil(t, prior)
		return Merge(prior, oneSuccess, false), nil
	})
	require.NoError(t, err)
	assert.Equal(t, key, state.Key())
	assert.False(t, state.UpdatedAt.IsZero())

	t.Run("failed update leaves state untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.UpdateStreak(ctx, key, func(*domain.StreakState) (domain.StreakState, error) {
			return domain.StreakState{}, boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.GetStreak(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Success)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.UpdateStreak(cctx, key, func(p *domain.StreakState) (domain.StreakState, error) {
			return *p, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteStreak(ctx, key))
		got, err := repo.GetStreak(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
