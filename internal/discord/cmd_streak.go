package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/rollmsg"
)

func (b *Bot) streakCommand() *discordgo.ApplicationCommand {
	base := b.catalog.Localizer(i18n.BaseLocale)
	names := b.localizations(i18n.KeyCommandStreakName)
	descriptions := b.localizations(i18n.KeyCommandStreakDescription)

	return &discordgo.ApplicationCommand{
		Name:                     CommandStreak,
		Description:              base.Translate(i18n.KeyCommandStreakDescription),
		NameLocalizations:        &names,
		DescriptionLocalizations: &descriptions,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionUser,
				Name:                     OptionUser,
				Description:              base.Translate(i18n.KeyOptionUserDesc),
				NameLocalizations:        b.localizations(i18n.KeyOptionUserName),
				DescriptionLocalizations: b.localizations(i18n.KeyOptionUserDesc),
			},
		},
	}
}

func (b *Bot) handleStreak(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	localizer := b.catalog.Localizer(b.interactionLocale(i))

	userID := getInteractionUser(i).ID
	if opt := getOption(i, OptionUser); opt != nil {
		// a nil session resolves the ID without a REST lookup
		userID = opt.UserValue(nil).ID
	}

	if b.streaks == nil {
		respondEphemeral(ctx, s, i, localizer.Translate(i18n.KeyStreakNone))
		return
	}

	state, err := b.streaks.GetStreak(ctx, i.GuildID, userID)
	switch {
	case errors.Is(err, domain.ErrStreakNotFound):
		respond(ctx, s, i, &discordgo.InteractionResponseData{
			Content: formatStreak(localizer, userID, nil),
		})
	case err != nil:
		logger.FromContext(ctx).Error(LogMsgStreakFailed, logger.AttrKeyGuildID, i.GuildID, logger.AttrKeyUserID, userID, "error", err)
		respondEphemeral(ctx, s, i, localizer.Translate(i18n.KeyErrorInternal))
	default:
		respond(ctx, s, i, &discordgo.InteractionResponseData{
			Content: formatStreak(localizer, userID, state),
		})
	}
}

// formatStreak renders a streak summary under the same author header as roll
// messages. The lines carry no status label, so the classifier ignores them.
func formatStreak(localizer *i18n.Localizer, userID string, state *domain.StreakState) string {
	var sb strings.Builder
	sb.WriteString("*" + rollmsg.Mention(userID) + "*\n")

	if state == nil || state.IsZero() {
		sb.WriteString(localizer.Translate(i18n.KeyStreakNone))
		return sb.String()
	}

	sb.WriteString(localizer.Sprintf(i18n.KeyStreakTotals,
		state.Success, state.CriticalSuccess, state.Failure, state.CriticalFailure))
	switch {
	case state.Consecutive.Success > 0:
		sb.WriteString("\n" + localizer.Sprintf(i18n.KeyStreakCurrentSuccess, state.Consecutive.Success))
	case state.Consecutive.Failure > 0:
		sb.WriteString("\n" + localizer.Sprintf(i18n.KeyStreakCurrentFailure, state.Consecutive.Failure))
	}
	sb.WriteString("\n" + localizer.Sprintf(i18n.KeyStreakLongest,
		state.LongestStreak.Success, state.LongestStreak.Failure))
	return sb.String()
}
