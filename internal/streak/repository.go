package streak

import (
	"github.com/osse101/DiceBot_Go/internal/repository"
)

// Repository is a local interface for streak persistence.
// It embeds repository.Streak so the service depends on this package only.
type Repository interface {
	repository.Streak
}
