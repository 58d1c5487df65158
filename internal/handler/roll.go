package handler

import (
	"context"
	"net/http"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/rollmsg"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// RollEvaluator evaluates dice notation
type RollEvaluator interface {
	Evaluate(ctx context.Context, expression string) (*dice.Evaluation, error)
}

// RollRequest asks for one or more expressions to be rolled for a user.
// Expressions are rendered together under one author header.
type RollRequest struct {
	Expression  string   `json:"expression" validate:"required_without=Expressions,max=200,notation"`
	Expressions []string `json:"expressions,omitempty" validate:"max=10,dive,required,max=200,notation"`
	UserID      string   `json:"user_id" validate:"required,max=64,platformid"`
	GuildID     string   `json:"guild_id,omitempty" validate:"max=64,platformid"`
	ChannelID   string   `json:"channel_id,omitempty" validate:"max=64,platformid"`
	Locale      string   `json:"locale,omitempty" validate:"max=35"`
	// Record feeds the rendered message into the streak service as if the
	// chat platform had delivered it
	Record bool `json:"record,omitempty"`
}

func (r RollRequest) expressions() []string {
	if r.Expression != "" {
		return append([]string{r.Expression}, r.Expressions...)
	}
	return r.Expressions
}

// RollResponse carries the results and the rendered chat message
type RollResponse struct {
	Results []domain.RollResult `json:"results"`
	Message string              `json:"message"`
	Locale  string              `json:"locale"`
	Trivial bool                `json:"trivial"`
	Streak  *streak.Update      `json:"streak,omitempty"`
}

// RollHandler serves dice rolls over HTTP
type RollHandler struct {
	evaluator     RollEvaluator
	catalog       *i18n.Catalog
	streaks       streak.Service
	defaultLocale string
}

// NewRollHandler creates a RollHandler. streaks may be nil when recording is disabled.
func NewRollHandler(evaluator RollEvaluator, catalog *i18n.Catalog, streaks streak.Service, defaultLocale string) *RollHandler {
	return &RollHandler{
		evaluator:     evaluator,
		catalog:       catalog,
		streaks:       streaks,
		defaultLocale: defaultLocale,
	}
}

// HandleRoll evaluates the requested expressions and renders them
// @Summary Roll dice
// @Description Evaluate one or more dice expressions and render the chat message, optionally recording the outcomes
// @Tags dice
// @Accept json
// @Produce json
// @Param request body RollRequest true "Roll request"
// @Success 200 {object} RollResponse "Roll evaluated"
// @Failure 400 {object} ErrorResponse "Invalid request or expression"
// @Failure 503 {object} ErrorResponse "Entropy unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/roll [post]
func (h *RollHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req RollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exprs := req.expressions()
	rolls := make([]rollmsg.Roll, 0, len(exprs))
	results := make([]domain.RollResult, 0, len(exprs))
	trivial := false
	for _, expr := range exprs {
		eval, err := h.evaluator.Evaluate(ctx, expr)
		if err != nil {
			respondServiceError(w, r, LogMsgRollFailed, err)
			return
		}
		trivial = trivial || eval.Trivial
		rolls = append(rolls, rollmsg.Roll{Result: eval.Result, Expression: expr})
		results = append(results, eval.Result)
	}

	locale := req.Locale
	if locale == "" {
		locale = h.defaultLocale
	}
	localizer := h.catalog.Localizer(locale)
	text := rollmsg.NewRenderer(localizer).RenderAll(rolls, rollmsg.Mention(req.UserID))

	resp := RollResponse{
		Results: results,
		Message: text,
		Locale:  localizer.Locale(),
		Trivial: trivial,
	}

	if h.streaks != nil {
		if trivial {
			h.streaks.MarkTrivial(ctx, req.GuildID, req.UserID, req.ChannelID)
		}
		if req.Record {
			update, err := h.streaks.RecordMessage(ctx, domain.ChatMessage{
				ID:                logger.GetRequestID(ctx),
				GuildID:           req.GuildID,
				ChannelID:         req.ChannelID,
				Content:           text,
				InteractionUserID: req.UserID,
			})
			if err != nil {
				respondServiceError(w, r, LogMsgStreakUpdateFailed, err)
				return
			}
			resp.Streak = update
		}
	}

	log.Info(LogMsgRollServed, "user_id", req.UserID, "rolls", len(rolls), "trivial", trivial, "locale", resp.Locale)
	respondJSON(w, http.StatusOK, resp)
}
