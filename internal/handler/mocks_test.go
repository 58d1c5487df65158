package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

// MockStreakService mocks streak.Service
type MockStreakService struct {
	mock.Mock
}

func (m *MockStreakService) RecordMessage(ctx context.Context, msg domain.ChatMessage) (*streak.Update, error) {
	args := m.Called(ctx, msg)
	update, _ := args.Get(0).(*streak.Update)
	return update, args.Error(1)
}

func (m *MockStreakService) RetractMessage(ctx context.Context, msg domain.ChatMessage) (*streak.Update, error) {
	args := m.Called(ctx, msg)
	update, _ := args.Get(0).(*streak.Update)
	return update, args.Error(1)
}

func (m *MockStreakService) ReviseMessage(ctx context.Context, before, after domain.ChatMessage) (*streak.Update, error) {
	args := m.Called(ctx, before, after)
	update, _ := args.Get(0).(*streak.Update)
	return update, args.Error(1)
}

func (m *MockStreakService) GetStreak(ctx context.Context, guildID, userID string) (*domain.StreakState, error) {
	args := m.Called(ctx, guildID, userID)
	state, _ := args.Get(0).(*domain.StreakState)
	return state, args.Error(1)
}

func (m *MockStreakService) MarkTrivial(ctx context.Context, guildID, userID, channelID string) {
	m.Called(ctx, guildID, userID, channelID)
}

// MockPinger mocks the database pool readiness probe
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// stubEvaluator returns canned evaluations keyed by expression
type stubEvaluator struct {
	evals map[string]*dice.Evaluation
	err   error
}

func (s *stubEvaluator) Evaluate(_ context.Context, expression string) (*dice.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	if eval, ok := s.evals[expression]; ok {
		return eval, nil
	}
	_, err := dice.Parse(expression)
	return nil, err
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
