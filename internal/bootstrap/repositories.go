package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DiceBot_Go/internal/config"
	"github.com/osse101/DiceBot_Go/internal/database"
	"github.com/osse101/DiceBot_Go/internal/database/postgres"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// Storage holds the streak repository and, for Postgres, the pool behind it.
// Pool is nil for in-memory storage.
type Storage struct {
	Streaks streak.Repository
	Pool    *pgxpool.Pool
}

// InitializeStorage opens the configured streak store. Postgres storage is
// migrated before it is returned.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn(LogMsgUsingMemoryStorage)
		return &Storage{Streaks: streak.NewMemoryRepository()}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgConnectDatabase, err)
		}
		version, err := database.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgMigrateDatabase, err)
		}
		slog.Info(LogMsgUsingPostgresStorage, "schema_version", version)
		return &Storage{Streaks: postgres.NewStreakRepository(pool), Pool: pool}, nil

	default:
		return nil, fmt.Errorf(ErrMsgUnknownStorage, cfg.Storage)
	}
}

// Ping checks the database connection; in-memory storage is always ready
func (s *Storage) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return nil
	}
	return s.Pool.Ping(ctx)
}

// Close releases the pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
