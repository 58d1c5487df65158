package discord

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/metrics"
)

// CommandHandler handles a slash command or a component interaction
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
	// Components are matched by custom ID prefix
	Components map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes component interactions whose custom ID starts with prefix
func (r *CommandRegistry) RegisterComponent(prefix string, handler CommandHandler) {
	r.Components[prefix] = handler
}

// Handle processes an interaction. Every interaction gets its own request ID
// so its log lines can be correlated.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

	name, h := r.lookup(i)
	if h == nil {
		logger.FromContext(ctx).Debug(LogMsgUnknownCommand, "type", i.Type.String(), "name", name)
		return
	}

	RecordCommand()
	metrics.DiscordCommands.WithLabelValues(name).Inc()
	h(ctx, s, i)
}

func (r *CommandRegistry) lookup(i *discordgo.InteractionCreate) (string, CommandHandler) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		return name, r.Handlers[name]
	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		for prefix, h := range r.Components {
			if strings.HasPrefix(id, prefix) {
				return prefix, h
			}
		}
		return id, nil
	default:
		return "", nil
	}
}

// RegisterCommands intelligently registers/updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands, "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf(ErrMsgFetchCommands, err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info(LogMsgCommandsForced, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
			return fmt.Errorf(ErrMsgOverwrite, err)
		}
		slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsUpdating, "existing", len(existingCmds), "desired", len(desiredCmds))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf(ErrMsgUpdateCommands, err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if !localizationsEqual(a.NameLocalizations, b.NameLocalizations) ||
		!localizationsEqual(a.DescriptionLocalizations, b.DescriptionLocalizations) {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if a.MaxLength != b.MaxLength {
		return false
	}
	return maps.Equal(a.NameLocalizations, b.NameLocalizations) &&
		maps.Equal(a.DescriptionLocalizations, b.DescriptionLocalizations)
}

// localizationsEqual treats a missing map and an empty one as the same
func localizationsEqual(a, b *map[discordgo.Locale]string) bool {
	var am, bm map[discordgo.Locale]string
	if a != nil {
		am = *a
	}
	if b != nil {
		bm = *b
	}
	return maps.Equal(am, bm)
}
