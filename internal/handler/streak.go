package handler

import (
	"net/http"

	"github.com/osse101/DiceBot_Go/internal/streak"
)

// StreakHandler serves stored streak states
type StreakHandler struct {
	streaks streak.Service
}

// NewStreakHandler creates a StreakHandler
func NewStreakHandler(streaks streak.Service) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

// HandleGetStreak returns the streak of ?guild_id=&user_id=
// @Summary Get a user's streak
// @Description Returns the stored success and failure streak of a user
// @Tags streaks
// @Produce json
// @Param user_id query string true "User ID"
// @Param guild_id query string false "Guild ID, empty for direct messages"
// @Success 200 {object} domain.StreakState
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Failure 404 {object} ErrorResponse "No streak recorded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/streaks [get]
func (h *StreakHandler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, QueryUserID)
	if !ok {
		return
	}
	guildID := r.URL.Query().Get(QueryGuildID)

	state, err := h.streaks.GetStreak(r.Context(), guildID, userID)
	if err != nil {
		respondServiceError(w, r, "Get streak", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
