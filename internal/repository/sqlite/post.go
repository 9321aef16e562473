package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

var _ repository.PostRepository = (*PostDB)(nil)

// PostDB implements repository.PostRepository on the posts table.
type PostDB struct {
	conn *sql.DB
}

const postColumns = `id, community_id, author_id, author_name, author_avatar, title, content, reactions, comment_count, created_at`

func (db *PostDB) Create(ctx context.Context, post *model.Post) error {
	post.ID = xid.New().String()
	post.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO posts (`+postColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.CommunityID,
		post.AuthorID,
		post.AuthorName,
		post.AuthorAvatar,
		post.Title,
		post.Content,
		post.Reactions,
		post.CommentCount,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting post: %w", err)
	}
	return nil
}

func (db *PostDB) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := db.conn.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id,
	).Scan(
		&p.ID,
		&p.CommunityID,
		&p.AuthorID,
		&p.AuthorName,
		&p.AuthorAvatar,
		&p.Title,
		&p.Content,
		&p.Reactions,
		&p.CommentCount,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("post", id)
		}
		return nil, fmt.Errorf("sqlite: getting post %s: %w", id, err)
	}
	return &p, nil
}

func (db *PostDB) ListByCommunity(ctx context.Context, communityID string) ([]model.Post, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts
		 WHERE community_id = ?
		 ORDER BY created_at DESC`,
		communityID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing posts of %s: %w", communityID, err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID,
			&p.CommunityID,
			&p.AuthorID,
			&p.AuthorName,
			&p.AuthorAvatar,
			&p.Title,
			&p.Content,
			&p.Reactions,
			&p.CommentCount,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating posts: %w", err)
	}
	return posts, nil
}

func (db *PostDB) Upsert(ctx context.Context, post *model.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO posts (`+postColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			community_id = excluded.community_id,
			author_id = excluded.author_id,
			author_name = excluded.author_name,
			author_avatar = excluded.author_avatar,
			title = excluded.title,
			content = excluded.content,
			reactions = excluded.reactions,
			comment_count = excluded.comment_count`,
		post.ID,
		post.CommunityID,
		post.AuthorID,
		post.AuthorName,
		post.AuthorAvatar,
		post.Title,
		post.Content,
		post.Reactions,
		post.CommentCount,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting post %s: %w", post.ID, err)
	}
	return nil
}
