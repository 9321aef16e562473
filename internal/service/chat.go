package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/repository"
)

// FallbackReply is shown when the companion service cannot produce a
// response. The client renders it verbatim.
const FallbackReply = "I'm having a little trouble responding right now. Please try again in a moment."

// fallbackStarters stand in when icebreaker generation fails; the
// community page always has something to show.
var fallbackStarters = []string{
	"What brought you to this community today?",
	"What's one small thing that helped you this week?",
	"Is there anything on your mind you'd like to share?",
}

// CompanionClient is what the chat service needs from the AI companion.
// internal/companion provides the real implementation.
type CompanionClient interface {
	Reply(ctx context.Context, userInput string) (string, error)
	Icebreakers(ctx context.Context, topic string, count int) ([]string, error)
}

// ChatService fronts the AI companion and degrades gracefully when it
// is unreachable.
type ChatService struct {
	companion   CompanionClient
	communities repository.CommunityRepository
	logger      *slog.Logger
}

func NewChatService(companion CompanionClient, communities repository.CommunityRepository, logger *slog.Logger) *ChatService {
	return &ChatService{
		companion:   companion,
		communities: communities,
		logger:      logger,
	}
}

// Reply returns the companion's answer to the user's message. When the
// companion is unavailable the user gets FallbackReply instead of an
// error; chat should never hard-fail on them.
func (s *ChatService) Reply(ctx context.Context, userInput string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", apperror.ValidationFailed("message", "must not be empty")
	}

	reply, err := s.companion.Reply(ctx, userInput)
	if err != nil {
		if errors.Is(err, apperror.ErrRemoteUnavailable) {
			s.logger.Warn("companion unavailable, serving fallback reply", slog.String("error", err.Error()))
			return FallbackReply, nil
		}
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// Icebreakers returns conversation starters for a community. The topic
// sent to the companion is the community's name, not its ID.
func (s *ChatService) Icebreakers(ctx context.Context, communityID string, count int) ([]string, error) {
	community, err := s.communities.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	messages, err := s.companion.Icebreakers(ctx, community.Name, count)
	if err != nil {
		if errors.Is(err, apperror.ErrRemoteUnavailable) {
			s.logger.Warn("companion unavailable, serving fallback starters",
				slog.String("communityID", communityID),
			)
			return fallbackStarters, nil
		}
		return nil, err
	}
	if len(messages) == 0 {
		return fallbackStarters, nil
	}
	return messages, nil
}
