package streak

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DiceBot_Go/internal/concurrency"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/repository"
)

// MemoryRepository is an in-process Repository. Updates of one key are
// serialized through a LockManager; different keys proceed in parallel.
type MemoryRepository struct {
	mu     sync.RWMutex
	states map[domain.StreakKey]domain.StreakState
	locks  *concurrency.LockManager
	now    func() time.Time
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		states: make(map[domain.StreakKey]domain.StreakState),
		locks:  concurrency.NewLockManager(),
		now:    time.Now,
	}
}

// GetStreak returns the stored state or nil when none exists
func (r *MemoryRepository) GetStreak(_ context.Context, key domain.StreakKey) (*domain.StreakState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[key]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// UpdateStreak applies fn to the stored state under the key lock
func (r *MemoryRepository) UpdateStreak(ctx context.Context, key domain.StreakKey, fn repository.StreakUpdateFunc) (*domain.StreakState, error) {
	var updated domain.StreakState
	err := r.locks.WithLock(key.String(), func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		prior, _ := r.GetStreak(ctx, key)

		next, err := fn(prior)
		if err != nil {
			return err
		}
		next.GuildID = key.GuildID
		next.UserID = key.UserID
		next.UpdatedAt = r.now().UTC()

		r.mu.Lock()
		r.states[next.Key()] = next
		r.mu.Unlock()

		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteStreak removes the stored state, if any
func (r *MemoryRepository) DeleteStreak(_ context.Context, key domain.StreakKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, key)
	return nil
}
