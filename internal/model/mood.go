package model

import "time"

// Moods a user can log. The set is fixed; anything else is a validation
// error at the service layer.
const (
	MoodHappy   = "Happy"
	MoodOkay    = "Okay"
	MoodMeh     = "Meh"
	MoodSad     = "Sad"
	MoodAnxious = "Anxious"
	MoodAngry   = "Angry"
)

// Moods lists every valid mood label.
var Moods = []string{MoodHappy, MoodOkay, MoodMeh, MoodSad, MoodAnxious, MoodAngry}

// ValidMood reports whether label is one of the fixed mood labels.
func ValidMood(label string) bool {
	for _, m := range Moods {
		if m == label {
			return true
		}
	}
	return false
}

// MoodEntry is one logged mood with an optional journal note. Entries are
// immutable after creation and always displayed newest first.
type MoodEntry struct {
	ID        string    `json:"id"        db:"id"`
	UserID    string    `json:"userId"    db:"user_id"`
	Mood      string    `json:"mood"      db:"mood"`
	Journal   string    `json:"journal"   db:"journal"`
	CreatedAt time.Time `json:"date"      db:"created_at"`
}
