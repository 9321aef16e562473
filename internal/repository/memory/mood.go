package memory

import (
	"context"

	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

type MoodRepo struct {
	store *memstore.Store
}

var _ repository.MoodRepository = (*MoodRepo)(nil)

func moodToDoc(e *model.MoodEntry) memstore.Document {
	d := memstore.Document{
		"userId":  e.UserID,
		"mood":    e.Mood,
		"journal": e.Journal,
	}
	if !e.CreatedAt.IsZero() {
		d["createdAt"] = e.CreatedAt
	}
	return d
}

func docToMood(d memstore.Document) model.MoodEntry {
	return model.MoodEntry{
		ID:        docString(d, "id"),
		UserID:    docString(d, "userId"),
		Mood:      docString(d, "mood"),
		Journal:   docString(d, "journal"),
		CreatedAt: docTime(d, "createdAt"),
	}
}

func (r *MoodRepo) Create(ctx context.Context, entry *model.MoodEntry) error {
	stored, err := r.store.Create(ctx, colMoodEntries, moodToDoc(entry))
	if err != nil {
		return err
	}
	entry.ID = docString(stored, "id")
	entry.CreatedAt = docTime(stored, "createdAt")
	return nil
}

func (r *MoodRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.MoodEntry, error) {
	if limit <= 0 || limit > repository.MoodHistoryLimit {
		limit = repository.MoodHistoryLimit
	}
	docs, err := r.store.Find(ctx, memstore.Query{
		Collection: colMoodEntries,
		Field:      "userId",
		Equals:     userID,
		OrderBy:    "createdAt",
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	entries := make([]model.MoodEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, docToMood(d))
	}
	return entries, nil
}

func (r *MoodRepo) Upsert(ctx context.Context, entry *model.MoodEntry) error {
	return r.store.Set(ctx, colMoodEntries, entry.ID, moodToDoc(entry))
}
