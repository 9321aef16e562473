package model

import "time"

// Post is a community post. AuthorName and AuthorAvatar are snapshots of
// the author's profile taken at creation; later profile edits do not
// rewrite old posts. Posts are immutable once created.
type Post struct {
	ID           string    `json:"id"            db:"id"`
	CommunityID  string    `json:"communityId"   db:"community_id"`
	AuthorID     string    `json:"userId"        db:"author_id"`
	AuthorName   string    `json:"userName"      db:"author_name"`
	AuthorAvatar string    `json:"userAvatar"    db:"author_avatar"`
	Title        string    `json:"title"         db:"title"`
	Content      string    `json:"content"       db:"content"`
	Reactions    int       `json:"reactions"     db:"reactions"`
	CommentCount int       `json:"commentsCount" db:"comment_count"`
	CreatedAt    time.Time `json:"createdAt"     db:"created_at"`
}
