package repository

import (
	"context"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// StreakUpdateFunc computes the next state from the stored one (nil when absent).
// Returning an error aborts the update and leaves the stored state untouched.
type StreakUpdateFunc func(prior *domain.StreakState) (domain.StreakState, error)

// Streak defines the interface for streak persistence.
// UpdateStreak must serialize concurrent updates of the same key.
type Streak interface {
	GetStreak(ctx context.Context, key domain.StreakKey) (*domain.StreakState, error)
	UpdateStreak(ctx context.Context, key domain.StreakKey, fn StreakUpdateFunc) (*domain.StreakState, error)
	DeleteStreak(ctx context.Context, key domain.StreakKey) error
}
