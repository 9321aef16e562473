package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository/memory"
)

func TestRecordMood(t *testing.T) {
	repo := memory.New(memstore.New())
	svc := NewMoodService(repo.Moods(), discardLogger())

	entry, err := svc.Record(context.Background(), "u1", model.MoodAnxious, "hard morning")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if entry.ID == "" {
		t.Error("Record() did not assign an ID")
	}
	if entry.Mood != model.MoodAnxious {
		t.Errorf("entry.Mood = %q", entry.Mood)
	}
}

func TestRecordMood_InvalidMood(t *testing.T) {
	repo := memory.New(memstore.New())
	svc := NewMoodService(repo.Moods(), discardLogger())

	for _, mood := range []string{"", "happy", "Ecstatic"} {
		_, err := svc.Record(context.Background(), "u1", mood, "")
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Record(%q) error = %v, want ErrValidation", mood, err)
		}
	}
}

func TestMoodHistory(t *testing.T) {
	repo := memory.New(memstore.New())
	svc := NewMoodService(repo.Moods(), discardLogger())
	ctx := context.Background()

	// Seed with explicit timestamps so ordering is deterministic.
	base := time.Now().Add(-time.Hour)
	for i, mood := range []string{model.MoodSad, model.MoodOkay, model.MoodHappy} {
		entry := &model.MoodEntry{
			ID:        mood,
			UserID:    "u1",
			Mood:      mood,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Moods().Upsert(ctx, entry); err != nil {
			t.Fatalf("seeding entry: %v", err)
		}
	}

	history, err := svc.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("History() returned %d entries, want 3", len(history))
	}
	if history[0].Mood != model.MoodHappy {
		t.Errorf("history[0].Mood = %q, want newest entry first", history[0].Mood)
	}
}

func TestMoodHistory_Empty(t *testing.T) {
	repo := memory.New(memstore.New())
	svc := NewMoodService(repo.Moods(), discardLogger())

	history, err := svc.History(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("History() returned %d entries, want 0", len(history))
	}
}
