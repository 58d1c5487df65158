// Package discord exposes dice rolls and streak statistics as Discord slash
// commands and feeds the bot's own roll messages into the streak service.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// Evaluator evaluates dice notation
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (*dice.Evaluation, error)
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	evaluator     Evaluator
	catalog       *i18n.Catalog
	streaks       streak.Service
	defaultLocale string
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
	// GuildID registers commands on one guild instead of globally, which
	// Discord propagates instantly.
	GuildID       string
	DefaultLocale string
}

// Dependencies are the services the bot commands use
type Dependencies struct {
	Evaluator Evaluator
	Catalog   *i18n.Catalog
	Streaks   streak.Service
}

// New creates a new Discord bot with the roll and streak commands registered
func New(cfg Config, deps Dependencies) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New(ErrMsgMissingToken)
	}
	if cfg.AppID == "" {
		return nil, errors.New(ErrMsgMissingAppID)
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	return newBot(s, cfg, deps), nil
}

func newBot(s *discordgo.Session, cfg Config, deps Dependencies) *Bot {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}
	locale := cfg.DefaultLocale
	if locale == "" {
		locale = i18n.BaseLocale
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	s.StateEnabled = true
	s.State.MaxMessageCount = DefaultMessageCacheSize

	b := &Bot{
		Session:       s,
		AppID:         cfg.AppID,
		GuildID:       cfg.GuildID,
		Registry:      NewCommandRegistry(),
		evaluator:     deps.Evaluator,
		catalog:       catalog,
		streaks:       deps.Streaks,
		defaultLocale: locale,
	}

	b.Registry.Register(b.rollCommand(), b.handleRoll)
	b.Registry.Register(b.streakCommand(), b.handleStreak)
	b.Registry.RegisterComponent(RerollPrefix, b.handleReroll)
	return b
}

// Start opens the gateway connection and registers the commands
func (b *Bot) Start(forceCommandUpdate bool) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.messageUpdate)
	b.Session.AddHandler(b.messageDelete)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenConnection, err)
	}

	if err := b.RegisterCommands(forceCommandUpdate); err != nil {
		_ = b.Session.Close()
		return err
	}

	slog.Info(LogMsgBotStarted, "guild_id", b.GuildID)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn(LogMsgBotStopped, "error", err)
		return
	}
	slog.Info(LogMsgBotStopped)
}

// Ping reports whether the gateway session is connected and ready
func (b *Bot) Ping(_ context.Context) error {
	if b == nil || b.Session == nil || !b.Session.DataReady {
		return errors.New(ErrMsgNotConnected)
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Registry.Handle(s, i)
}
