package service

import (
	"context"
	"log/slog"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

// MoodService records mood check-ins and serves the history view.
type MoodService struct {
	moods  repository.MoodRepository
	logger *slog.Logger
}

func NewMoodService(moods repository.MoodRepository, logger *slog.Logger) *MoodService {
	return &MoodService{moods: moods, logger: logger}
}

// Record stores a mood check-in. The journal text is optional.
func (s *MoodService) Record(ctx context.Context, userID, mood, journal string) (*model.MoodEntry, error) {
	if !model.ValidMood(mood) {
		return nil, apperror.ValidationFailed("mood", "must be one of Happy, Okay, Meh, Sad, Anxious, Angry")
	}

	entry := &model.MoodEntry{
		UserID:  userID,
		Mood:    mood,
		Journal: journal,
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("mood recorded", slog.String("userID", userID), slog.String("mood", mood))
	return entry, nil
}

// History returns the user's most recent check-ins, newest first,
// capped at repository.MoodHistoryLimit.
func (s *MoodService) History(ctx context.Context, userID string) ([]model.MoodEntry, error) {
	return s.moods.ListByUser(ctx, userID, repository.MoodHistoryLimit)
}
