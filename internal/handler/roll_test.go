package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/random"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

func successEval() *dice.Evaluation {
	cmp := &domain.Comparison{Operator: domain.OpGreaterEqual, Threshold: 10}
	return &dice.Evaluation{
		Expression: dice.MustParse("2d6>=10"),
		Result: domain.RollResult{
			Expression: "2d6>=10",
			Dice:       []int{6, 5},
			Total:      11,
			Comparison: cmp,
			Outcome:    domain.OutcomeSuccess,
			Critical:   domain.CriticalSuccess,
		},
	}
}

func trivialEval() *dice.Evaluation {
	cmp := &domain.Comparison{Operator: domain.OpGreater, Threshold: 20}
	return &dice.Evaluation{
		Expression: dice.MustParse("1d20>20"),
		Result: domain.RollResult{
			Expression: "1d20>20",
			Dice:       []int{7},
			Total:      7,
			Comparison: cmp,
			Outcome:    domain.OutcomeFailure,
			Critical:   domain.CriticalNone,
		},
		Trivial: true,
	}
}

func TestHandleRoll(t *testing.T) {
	InitValidator()
	evaluator := &stubEvaluator{evals: map[string]*dice.Evaluation{
		"2d6>=10": successEval(),
		"1d20>20": trivialEval(),
	}}

	tests := []struct {
		name           string
		body           any
		setupMocks     func(*MockStreakService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "renders in the default locale",
			body:           RollRequest{Expression: "2d6>=10", UserID: "42"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "*<@42>*\\n **Critical success** — 2d6>=10 ⟶ [6, 5] = [11] >= 10",
		},
		{
			name:           "renders in the requested locale",
			body:           RollRequest{Expression: "2d6>=10", UserID: "42", Locale: "fr-CA"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "**Succès critique**",
		},
		{
			name: "trivial rolls are marked",
			body: RollRequest{Expression: "1d20>20", UserID: "42", GuildID: "1", ChannelID: "2"},
			setupMocks: func(m *MockStreakService) {
				m.On("MarkTrivial", mock.Anything, "1", "42", "2").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"trivial":true`,
		},
		{
			name: "record feeds the rendered message to the streak service",
			body: RollRequest{Expression: "2d6>=10", UserID: "42", GuildID: "1", Record: true},
			setupMocks: func(m *MockStreakService) {
				m.On("RecordMessage", mock.Anything, mock.MatchedBy(func(msg domain.ChatMessage) bool {
					return msg.InteractionUserID == "42" && msg.GuildID == "1" &&
						bytes.Contains([]byte(msg.Content), []byte("**Critical success**"))
				})).Return(&streak.Update{UserID: "42", Delta: domain.OutcomeCount{Success: 1, CriticalSuccess: 1}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"critical_success":1`,
		},
		{
			name: "several expressions share one header",
			body: RollRequest{Expressions: []string{"2d6>=10", "1d20>20"}, UserID: "42"},
			setupMocks: func(m *MockStreakService) {
				m.On("MarkTrivial", mock.Anything, "", "42", "").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "[11] >= 10\\n **Failure** — 1d20>20",
		},
		{
			name:           "malformed JSON",
			body:           "{not json",
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "missing expression",
			body:           RollRequest{UserID: "42"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"expression":"Invalid value"`,
		},
		{
			name:           "missing user",
			body:           RollRequest{Expression: "2d6>=10"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"userid":"This field is required"`,
		},
		{
			name:           "characters outside the notation",
			body:           RollRequest{Expression: "2d6; drop table", UserID: "42"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "cannot appear in dice notation",
		},
		{
			name:           "parse errors are reported with their reason",
			body:           RollRequest{Expression: "0d6", UserID: "42"},
			setupMocks:     func(*MockStreakService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   dice.ReasonZeroDice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streaks := &MockStreakService{}
			tt.setupMocks(streaks)
			h := NewRollHandler(evaluator, i18n.Default(), streaks, i18n.BaseLocale)

			w := postJSON(t, h.HandleRoll, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			streaks.AssertExpectations(t)
		})
	}
}

func TestHandleRoll_RealEvaluator(t *testing.T) {
	InitValidator()

	t.Run("seeded roll stays within bounds", func(t *testing.T) {
		ev := dice.NewEvaluator(nil, random.NewSeededSource(7))
		h := NewRollHandler(ev, i18n.Default(), nil, i18n.BaseLocale)

		w := postJSON(t, h.HandleRoll, RollRequest{Expression: "3d6+2", UserID: "42"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeBody[RollResponse](t, w)
		require.Len(t, resp.Results, 1)
		assert.GreaterOrEqual(t, resp.Results[0].Total, 5)
		assert.LessOrEqual(t, resp.Results[0].Total, 20)
		assert.Len(t, resp.Results[0].Dice, 3)
		assert.Equal(t, i18n.BaseLocale, resp.Locale)
		assert.False(t, resp.Trivial)
	})

	t.Run("entropy failure is a 503", func(t *testing.T) {
		ev := dice.NewEvaluator(nil, random.NewReaderSource(bytes.NewReader(nil)))
		h := NewRollHandler(ev, i18n.Default(), nil, i18n.BaseLocale)

		w := postJSON(t, h.HandleRoll, RollRequest{Expression: "1d6", UserID: "42"})

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEntropyUnavailable)
	})

	t.Run("configured dice limit", func(t *testing.T) {
		ev := dice.NewEvaluator(dice.NewParser(5, 100), random.NewSeededSource(1))
		h := NewRollHandler(ev, i18n.Default(), nil, i18n.BaseLocale)

		w := postJSON(t, h.HandleRoll, RollRequest{Expression: "6d6", UserID: "42"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTooManyDice)
	})
}
