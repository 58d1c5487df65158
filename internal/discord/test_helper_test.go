package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/i18n"
	"github.com/osse101/DiceBot_Go/internal/random"
	"github.com/osse101/DiceBot_Go/internal/streak"
)

const botUserID = "999"

// MockRoundTripper intercepts every REST call the session makes
type MockRoundTripper struct {
	mu       sync.Mutex
	requests []capturedRequest
	// Respond overrides the default empty JSON object response
	Respond func(req *http.Request) (*http.Response, error)
}

type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	m.mu.Lock()
	m.requests = append(m.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	m.mu.Unlock()

	if m.Respond != nil {
		return m.Respond(req)
	}
	return jsonResponse("{}"), nil
}

func (m *MockRoundTripper) Requests() []capturedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]capturedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

func jsonResponse(body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

// interactionReply is the subset of an interaction callback the tests check
type interactionReply struct {
	Type int `json:"type"`
	Data struct {
		Content    string `json:"content"`
		Flags      int    `json:"flags"`
		Components []struct {
			Components []struct {
				Label    string `json:"label"`
				CustomID string `json:"custom_id"`
			} `json:"components"`
		} `json:"components"`
	} `json:"data"`
}

// lastReply decodes the most recent interaction callback
func (m *MockRoundTripper) lastReply(t *testing.T) interactionReply {
	t.Helper()
	reqs := m.Requests()
	require.NotEmpty(t, reqs, "no Discord request was made")
	var reply interactionReply
	require.NoError(t, json.Unmarshal(reqs[len(reqs)-1].Body, &reply))
	return reply
}

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

// TestContext bundles a bot whose session talks to a MockRoundTripper
type TestContext struct {
	Bot     *Bot
	Session *discordgo.Session
	Discord *MockRoundTripper
	Streaks *MockStreakService
}

func SetupTestContext(t *testing.T, streaks streak.Service) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	rt := &MockRoundTripper{}
	session.Client = &http.Client{Transport: rt}
	session.State.User = &discordgo.User{ID: botUserID, Username: "dice", Bot: true}

	mockStreaks, _ := streaks.(*MockStreakService)
	parser := dice.NewParser(100, 1000)
	bot := newBot(session, Config{AppID: "app", DefaultLocale: i18n.BaseLocale}, Dependencies{
		Evaluator: dice.NewEvaluator(parser, random.NewSeededSource(7)),
		Catalog:   i18n.Default(),
		Streaks:   streaks,
	})

	return &TestContext{Bot: bot, Session: session, Discord: rt, Streaks: mockStreaks}
}

// commandInteraction builds a guild slash command interaction from user 42
func commandInteraction(name, locale string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "int-1",
			Token:     "tok",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "1",
			ChannelID: "2",
			Locale:    discordgo.Locale(locale),
			Member:    &discordgo.Member{User: &discordgo.User{ID: "42", Username: "alice"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
		},
	}
}

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "int-2",
			Token:     "tok",
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   "1",
			ChannelID: "2",
			User:      &discordgo.User{ID: "77"},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}
