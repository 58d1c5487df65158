package handler

import (
	"net/http"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// MessageRequest is a chat message delivered by an external platform adapter
type MessageRequest struct {
	ID                string `json:"id" validate:"max=64"`
	GuildID           string `json:"guild_id" validate:"max=64,platformid"`
	ChannelID         string `json:"channel_id" validate:"max=64,platformid"`
	Content           string `json:"content" validate:"required,max=4000"`
	InteractionUserID string `json:"interaction_user_id,omitempty" validate:"max=64,platformid"`
}

func (m MessageRequest) toDomain() domain.ChatMessage {
	return domain.ChatMessage{
		ID:                m.ID,
		GuildID:           m.GuildID,
		ChannelID:         m.ChannelID,
		Content:           m.Content,
		InteractionUserID: m.InteractionUserID,
	}
}

// ReviseRequest carries both versions of an edited message
type ReviseRequest struct {
	Before MessageRequest `json:"before"`
	After  MessageRequest `json:"after"`
}

// MessageHandler feeds chat messages into the streak service
type MessageHandler struct {
	streaks streak.Service
}

// NewMessageHandler creates a MessageHandler
func NewMessageHandler(streaks streak.Service) *MessageHandler {
	return &MessageHandler{streaks: streaks}
}

// HandleRecord merges the outcomes of a new message
// @Summary Record a chat message
// @Description Evaluate the expressions in a new message and merge the outcomes into the author's streak
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Chat message"
// @Success 200 {object} streak.Update "Outcomes merged"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/messages/ [post]
func (h *MessageHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	update, err := h.streaks.RecordMessage(r.Context(), req.toDomain())
	h.respond(w, r, "record", update, err)
}

// HandleRetract removes the outcomes of a deleted message
// @Summary Retract a chat message
// @Description Subtract the outcomes of a deleted message from the author's streak
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Deleted chat message"
// @Success 200 {object} streak.Update "Outcomes retracted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/messages/retract [post]
func (h *MessageHandler) HandleRetract(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	update, err := h.streaks.RetractMessage(r.Context(), req.toDomain())
	h.respond(w, r, "retract", update, err)
}

// HandleRevise replaces the outcomes of an edited message
// @Summary Revise a chat message
// @Description Replace the outcomes of an edited message with those of its new content
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body ReviseRequest true "Original and edited message"
// @Success 200 {object} streak.Update "Outcomes revised"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/messages/revise [post]
func (h *MessageHandler) HandleRevise(w http.ResponseWriter, r *http.Request) {
	var req ReviseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	update, err := h.streaks.ReviseMessage(r.Context(), req.Before.toDomain(), req.After.toDomain())
	h.respond(w, r, "revise", update, err)
}

func (h *MessageHandler) respond(w http.ResponseWriter, r *http.Request, op string, update *streak.Update, err error) {
	if err != nil {
		respondServiceError(w, r, LogMsgStreakUpdateFailed, err)
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgMessageProcessed, "op", op, "recorded", update.Recorded())
	respondJSON(w, http.StatusOK, update)
}
