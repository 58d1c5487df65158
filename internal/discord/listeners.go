package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/logger"
)

// Only messages the bot itself posted are fed to the streak service; those are
// the rendered rolls the classifier understands.

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.ownMessage(s, m.Message) {
		return
	}
	ctx := b.listenerContext()
	if _, err := b.streaks.RecordMessage(ctx, toChatMessage(m.Message)); err != nil {
		logger.FromContext(ctx).Error(LogMsgRecordFailed, "message_id", m.ID, "error", err)
	}
}

func (b *Bot) messageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	ctx := b.listenerContext()
	if m.BeforeUpdate == nil {
		if b.ownMessage(s, m.Message) {
			logger.FromContext(ctx).Debug(LogMsgMissingBefore, "message_id", m.ID)
		}
		return
	}
	if !b.ownMessage(s, m.BeforeUpdate) {
		return
	}

	after := toChatMessage(m.Message)
	before := toChatMessage(m.BeforeUpdate)
	if after.InteractionUserID == "" {
		after.InteractionUserID = before.InteractionUserID
	}
	if after.GuildID == "" {
		after.GuildID = before.GuildID
	}
	if before.Content == after.Content {
		return
	}

	if _, err := b.streaks.ReviseMessage(ctx, before, after); err != nil {
		logger.FromContext(ctx).Error(LogMsgReviseFailed, "message_id", m.ID, "error", err)
	}
}

func (b *Bot) messageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	ctx := b.listenerContext()
	if m.BeforeDelete == nil {
		logger.FromContext(ctx).Debug(LogMsgMissingBefore, "message_id", m.ID)
		return
	}
	if !b.ownMessage(s, m.BeforeDelete) {
		return
	}
	if _, err := b.streaks.RetractMessage(ctx, toChatMessage(m.BeforeDelete)); err != nil {
		logger.FromContext(ctx).Error(LogMsgRetractFailed, "message_id", m.ID, "error", err)
	}
}

func (b *Bot) ownMessage(s *discordgo.Session, m *discordgo.Message) bool {
	if b.streaks == nil || m == nil || m.Author == nil {
		return false
	}
	if s.State == nil || s.State.User == nil {
		return false
	}
	return m.Author.ID == s.State.User.ID
}

func (b *Bot) listenerContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

// toChatMessage keeps what attribution and classification need from m
func toChatMessage(m *discordgo.Message) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:        m.ID,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
	}
	if m.Interaction != nil && m.Interaction.User != nil {
		msg.InteractionUserID = m.Interaction.User.ID
	}
	return msg
}
