package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/rollmsg"
)

func (b *Bot) rollCommand() *discordgo.ApplicationCommand {
	base := b.catalog.Localizer(i18n.BaseLocale)
	names := b.localizations(i18n.KeyCommandRollName)
	descriptions := b.localizations(i18n.KeyCommandRollDescription)

	return &discordgo.ApplicationCommand{
		Name:                     CommandRoll,
		Description:              base.Translate(i18n.KeyCommandRollDescription),
		NameLocalizations:        &names,
		DescriptionLocalizations: &descriptions,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     OptionExpression,
				Description:              base.Translate(i18n.KeyOptionExpressionDesc),
				NameLocalizations:        b.localizations(i18n.KeyOptionExpressionName),
				DescriptionLocalizations: b.localizations(i18n.KeyOptionExpressionDesc),
				Required:                 true,
				MaxLength:                MaxExpressionLength,
			},
		},
	}
}

func (b *Bot) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opt := getOption(i, OptionExpression)
	if opt == nil {
		return
	}
	b.roll(ctx, s, i, opt.StringValue())
}

// handleReroll rolls the expression carried by a reroll button for whoever clicked it
func (b *Bot) handleReroll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	expression := strings.TrimPrefix(i.MessageComponentData().CustomID, RerollPrefix)
	b.roll(ctx, s, i, expression)
}

// roll evaluates expression, posts the rendered message and marks the channel
// when the comparison was decided before rolling, so the resulting message
// does not move the user's streak.
func (b *Bot) roll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, expression string) {
	localizer := b.catalog.Localizer(b.interactionLocale(i))
	user := getInteractionUser(i)

	eval, err := b.evaluator.Evaluate(ctx, expression)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRollFailed, "expression", expression, "error", err)
		respondEphemeral(ctx, s, i, rollErrorMessage(localizer, expression, err))
		return
	}

	if eval.Trivial && b.streaks != nil {
		b.streaks.MarkTrivial(ctx, i.GuildID, user.ID, i.ChannelID)
	}

	text := rollmsg.NewRenderer(localizer).Render(eval.Result, expression, rollmsg.Mention(user.ID))
	data := &discordgo.InteractionResponseData{Content: text}
	if button, ok := rerollButton(localizer, expression); ok {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{button}},
		}
	} else {
		logger.FromContext(ctx).Debug(LogMsgRerollTooLong, "expression", expression)
	}
	respond(ctx, s, i, data)
}

func rerollButton(localizer *i18n.Localizer, expression string) (discordgo.Button, bool) {
	customID := RerollPrefix + expression
	if len(customID) > MaxCustomIDLength {
		return discordgo.Button{}, false
	}
	return discordgo.Button{
		Label:    localizer.Translate(i18n.KeyButtonReroll),
		Style:    discordgo.SecondaryButton,
		CustomID: customID,
		Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
	}, true
}

func rollErrorMessage(localizer *i18n.Localizer, expression string, err error) string {
	switch {
	case errors.Is(err, domain.ErrEntropyUnavailable):
		return localizer.Translate(i18n.KeyErrorEntropy)
	case errors.Is(err, domain.ErrInvalidExpression):
		var parseErr *dice.ParseError
		if errors.As(err, &parseErr) {
			return localizer.Sprintf(i18n.KeyErrorInvalidExpression, expression) + "\n-# " + parseErr.Reason
		}
		return localizer.Sprintf(i18n.KeyErrorInvalidExpression, expression)
	default:
		return localizer.Translate(i18n.KeyErrorInternal)
	}
}
