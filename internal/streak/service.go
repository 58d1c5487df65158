package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/metrics"
	"github.com/osse101/DiceBot_Go/internal/rollmsg"
)

// Classifier turns message text into outcome counts
type Classifier interface {
	Classify(text string) domain.OutcomeCount
}

// Update describes what a message did to a user's streak
type Update struct {
	UserID  string              `json:"user_id,omitempty"`
	Delta   domain.OutcomeCount `json:"delta"`
	Trivial bool                `json:"trivial"`
	// State is nil when nothing was recorded
	State *domain.StreakState `json:"state,omitempty"`
}

// Recorded reports whether the update touched a stored state
func (u *Update) Recorded() bool {
	return u != nil && u.State != nil
}

// Service defines the interface for streak operations
type Service interface {
	RecordMessage(ctx context.Context, msg domain.ChatMessage) (*Update, error)
	RetractMessage(ctx context.Context, msg domain.ChatMessage) (*Update, error)
	ReviseMessage(ctx context.Context, before, after domain.ChatMessage) (*Update, error)
	GetStreak(ctx context.Context, guildID, userID string) (*domain.StreakState, error)
	MarkTrivial(ctx context.Context, guildID, userID, channelID string)
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used for trivial cache buckets
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service implements the Service interface
type service struct {
	repo       Repository
	classifier Classifier
	cache      *TrivialCache
	now        func() time.Time
}

// NewService creates a new streak service
func NewService(repo Repository, classifier Classifier, cache *TrivialCache, opts ...Option) Service {
	if cache == nil {
		cache = NewTrivialCache(DefaultTrivialCacheSize, DefaultBucketWidth)
	}
	s := &service{
		repo:       repo,
		classifier: classifier,
		cache:      cache,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// attribute classifies msg and resolves its author. ok is false when there is
// nothing to record.
func (s *service) attribute(ctx context.Context, msg domain.ChatMessage) (string, domain.OutcomeCount, bool) {
	log := logger.FromContext(ctx)

	counts := s.classifier.Classify(msg.Content)
	if counts.IsZero() {
		log.Debug(LogMsgNothingToRecord, "message_id", msg.ID)
		return "", counts, false
	}

	userID, ok := rollmsg.ExtractAuthor(rollmsg.MessageMeta{
		InteractionUserID: msg.InteractionUserID,
		Content:           msg.Content,
	})
	if !ok {
		metrics.UnattributedMessages.Inc()
		log.Debug(LogMsgUnattributed, "message_id", msg.ID, "channel_id", msg.ChannelID)
		return "", counts, false
	}
	return userID, counts, true
}

// RecordMessage merges the outcomes of a new roll message into its author's streak
func (s *service) RecordMessage(ctx context.Context, msg domain.ChatMessage) (*Update, error) {
	log := logger.FromContext(ctx)

	userID, delta, ok := s.attribute(ctx, msg)
	if !ok {
		return &Update{Delta: delta}, nil
	}

	trivial := s.cache.Seen(msg.GuildID, userID, msg.ChannelID, s.now())
	if trivial {
		metrics.TrivialCacheHits.Inc()
	}

	key := domain.StreakKey{GuildID: msg.GuildID, UserID: userID}
	state, err := s.repo.UpdateStreak(ctx, key, func(prior *domain.StreakState) (domain.StreakState, error) {
		return Merge(prior, delta, trivial), nil
	})
	if err != nil {
		log.Error(LogMsgUpdateFailed, "error", err, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID)
		return nil, fmt.Errorf(ErrMsgUpdateStreakFailed, err)
	}

	metrics.RecordOutcomes(delta)
	metrics.RecordMerge(trivial)
	log.Info(LogMsgStreakMerged,
		slog.String(logger.AttrKeyGuildID, key.GuildID),
		slog.String(logger.AttrKeyUserID, key.UserID),
		slog.Any("delta", delta),
		slog.Bool("trivial", trivial),
		slog.Any("consecutive", state.Consecutive),
	)

	return &Update{UserID: userID, Delta: delta, Trivial: trivial, State: state}, nil
}

// RetractMessage removes the outcomes of a deleted roll message from the totals
func (s *service) RetractMessage(ctx context.Context, msg domain.ChatMessage) (*Update, error) {
	log := logger.FromContext(ctx)

	userID, delta, ok := s.attribute(ctx, msg)
	if !ok {
		return &Update{Delta: delta}, nil
	}

	key := domain.StreakKey{GuildID: msg.GuildID, UserID: userID}
	state, err := s.repo.UpdateStreak(ctx, key, func(prior *domain.StreakState) (domain.StreakState, error) {
		if prior == nil {
			return domain.StreakState{}, domain.ErrStreakNotFound
		}
		return Unmerge(prior, delta), nil
	})
	if errors.Is(err, domain.ErrStreakNotFound) {
		log.Debug(LogMsgRetractNoState, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID)
		return &Update{UserID: userID, Delta: delta}, nil
	}
	if err != nil {
		log.Error(LogMsgUpdateFailed, "error", err, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID)
		return nil, fmt.Errorf(ErrMsgUpdateStreakFailed, err)
	}

	metrics.StreakRetractions.Inc()
	log.Info(LogMsgStreakRetracted, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID, "delta", delta)

	return &Update{UserID: userID, Delta: delta, State: state}, nil
}

// ReviseMessage replaces the outcomes of an edited message: the old outcomes
// are retracted and the new ones merged as trivial, so edits move totals but
// never streaks.
func (s *service) ReviseMessage(ctx context.Context, before, after domain.ChatMessage) (*Update, error) {
	log := logger.FromContext(ctx)

	beforeUser, beforeDelta, beforeOK := s.attribute(ctx, before)
	afterUser, afterDelta, afterOK := s.attribute(ctx, after)

	if beforeOK && (!afterOK || beforeUser != afterUser) {
		if _, err := s.RetractMessage(ctx, before); err != nil {
			return nil, err
		}
		beforeOK = false
	}
	if !afterOK {
		return &Update{Delta: afterDelta}, nil
	}

	key := domain.StreakKey{GuildID: after.GuildID, UserID: afterUser}
	state, err := s.repo.UpdateStreak(ctx, key, func(prior *domain.StreakState) (domain.StreakState, error) {
		if beforeOK {
			retracted := Unmerge(prior, beforeDelta)
			prior = &retracted
		}
		return Merge(prior, afterDelta, true), nil
	})
	if err != nil {
		log.Error(LogMsgUpdateFailed, "error", err, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID)
		return nil, fmt.Errorf(ErrMsgUpdateStreakFailed, err)
	}

	metrics.RecordMerge(true)
	log.Info(LogMsgStreakRevised, logger.AttrKeyGuildID, key.GuildID, logger.AttrKeyUserID, key.UserID,
		"before", beforeDelta, "after", afterDelta)

	return &Update{UserID: afterUser, Delta: afterDelta, Trivial: true, State: state}, nil
}

// GetStreak returns the stored state of a user
func (s *service) GetStreak(ctx context.Context, guildID, userID string) (*domain.StreakState, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	state, err := s.repo.GetStreak(ctx, domain.StreakKey{GuildID: guildID, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStreakFailed, err)
	}
	if state == nil {
		return nil, domain.ErrStreakNotFound
	}
	return state, nil
}

// MarkTrivial records that the user just produced a roll whose outcome was
// decided before rolling
func (s *service) MarkTrivial(ctx context.Context, guildID, userID, channelID string) {
	s.cache.Mark(guildID, userID, channelID, s.now())
	logger.FromContext(ctx).Debug(LogMsgTrivialMarked,
		logger.AttrKeyGuildID, guildID, logger.AttrKeyUserID, userID, "channel_id", channelID)
}
