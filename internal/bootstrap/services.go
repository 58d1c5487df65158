package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DiceBot_Go/internal/config"
	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/discord"
	"github.com/osse101/DiceBot_Go/internal/handler"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/random"
	"github.com/osse101/DiceBot_Go/internal/rollmsg"
	"github.com/osse101/DiceBot_Go/internal/server"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// Services holds the application services shared by the HTTP API and the bot
type Services struct {
	Catalog   *i18n.Catalog
	Parser    *dice.Parser
	Evaluator *dice.Evaluator
	Streaks   streak.Service
}

// InitializeServices builds the evaluator and the streak service on top of storage.
// Rolls always draw from the operating system's secure source.
func InitializeServices(cfg *config.Config, storage *Storage) *Services {
	catalog := i18n.Default()
	parser := dice.NewParser(cfg.DiceMaxDice, cfg.DiceMaxFaces)

	return &Services{
		Catalog:   catalog,
		Parser:    parser,
		Evaluator: dice.NewEvaluator(parser, random.NewCryptoSource()),
		Streaks: streak.NewService(
			storage.Streaks,
			rollmsg.NewClassifier(catalog),
			streak.NewTrivialCache(cfg.TrivialCacheSize, cfg.TrivialBucket),
		),
	}
}

// NewServer builds the HTTP API from cfg and the shared services
func NewServer(cfg *config.Config, svc *Services, ready handler.Pinger) *server.Server {
	return server.NewServer(server.Options{
		Port:                   cfg.Port,
		APIKey:                 cfg.APIKey,
		ServiceName:            cfg.ServiceName,
		Version:                cfg.Version,
		DefaultLocale:          cfg.DefaultLocale,
		HistogramMaxIterations: cfg.HistogramMaxIterations,
		HistogramWorkers:       cfg.HistogramWorkers,
	}, server.Dependencies{
		Evaluator: svc.Evaluator,
		Parser:    svc.Parser,
		Catalog:   svc.Catalog,
		Streaks:   svc.Streaks,
		Pinger:    ready,
	})
}

// NewBot creates the Discord bot, or returns nil when no token is configured
func NewBot(cfg *config.Config, svc *Services) (*discord.Bot, error) {
	if !cfg.DiscordEnabled() {
		slog.Info(LogMsgDiscordDisabled)
		return nil, nil
	}
	bot, err := discord.New(discord.Config{
		Token:         cfg.DiscordToken,
		AppID:         cfg.DiscordAppID,
		GuildID:       cfg.DiscordGuildID,
		DefaultLocale: cfg.DefaultLocale,
	}, discord.Dependencies{
		Evaluator: svc.Evaluator,
		Catalog:   svc.Catalog,
		Streaks:   svc.Streaks,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDiscordBot, err)
	}
	return bot, nil
}

// Readiness gates /readyz on every configured dependency
type Readiness []handler.Pinger

// Ping fails with the first dependency that is not ready
func (r Readiness) Ping(ctx context.Context) error {
	for _, p := range r {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
