package model

// Resource types. The set is conventional rather than enforced: seed data
// only uses these three, but the field is an open string.
const (
	ResourceArticle  = "Article"
	ResourceVideo    = "Video"
	ResourceExercise = "Exercise"
)

// Resource is one entry in the curated library. Resources are seed data.
type Resource struct {
	ID          string `json:"id"          db:"id"`
	Title       string `json:"title"       db:"title"`
	Description string `json:"description" db:"description"`
	Topic       string `json:"topic"       db:"topic"`
	Type        string `json:"type"        db:"type"`
	ContentURL  string `json:"contentUrl"  db:"content_url"`
	Icon        string `json:"icon"        db:"icon"`
}
