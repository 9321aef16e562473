package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

var _ repository.MoodRepository = (*MoodDB)(nil)

// MoodDB implements repository.MoodRepository on the mood_entries table.
type MoodDB struct {
	conn *sql.DB
}

const moodColumns = `id, user_id, mood, journal, created_at`

func (db *MoodDB) Create(ctx context.Context, entry *model.MoodEntry) error {
	entry.ID = xid.New().String()
	entry.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO mood_entries (`+moodColumns+`) VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.UserID,
		entry.Mood,
		entry.Journal,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting mood entry: %w", err)
	}
	return nil
}

func (db *MoodDB) ListByUser(ctx context.Context, userID string, limit int) ([]model.MoodEntry, error) {
	if limit <= 0 || limit > repository.MoodHistoryLimit {
		limit = repository.MoodHistoryLimit
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+moodColumns+` FROM mood_entries
		 WHERE user_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing mood entries of %s: %w", userID, err)
	}
	defer rows.Close()

	entries := []model.MoodEntry{}
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Journal, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating mood entries: %w", err)
	}
	return entries, nil
}

func (db *MoodDB) Upsert(ctx context.Context, entry *model.MoodEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO mood_entries (`+moodColumns+`)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			mood = excluded.mood,
			journal = excluded.journal`,
		entry.ID,
		entry.UserID,
		entry.Mood,
		entry.Journal,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting mood entry %s: %w", entry.ID, err)
	}
	return nil
}
