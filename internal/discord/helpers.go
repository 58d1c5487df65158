package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/logger"
)

// respond sends a message in reply to an interaction. Mentions in content are
// rendered but never ping anyone.
func respond(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	data.AllowedMentions = &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// respondEphemeral sends a message only the invoking user can see
func respondEphemeral(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respond(ctx, s, i, &discordgo.InteractionResponseData{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// getOption returns the named command option, or nil
func getOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// interactionLocale prefers the user's client locale, then the guild's
func (b *Bot) interactionLocale(i *discordgo.InteractionCreate) string {
	if i.Locale != "" {
		return string(i.Locale)
	}
	if i.GuildLocale != nil && *i.GuildLocale != "" {
		return string(*i.GuildLocale)
	}
	return b.defaultLocale
}

// localizations converts catalog localizations to the discordgo map type
func (b *Bot) localizations(key string) map[discordgo.Locale]string {
	src := b.catalog.DiscordLocalizations(key)
	out := make(map[discordgo.Locale]string, len(src))
	for locale, value := range src {
		out[discordgo.Locale(locale)] = value
	}
	return out
}
