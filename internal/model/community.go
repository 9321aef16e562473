package model

// Community is a topic space for posts. Communities are seed data: users
// post into them but never create or edit them.
type Community struct {
	ID          string `json:"id"          db:"id"`
	Name        string `json:"name"        db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon"        db:"icon"` // icon tag for the client, e.g. "ShieldAlert"
}
