package memory

import (
	"context"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

type PostRepo struct {
	store *memstore.Store
}

var _ repository.PostRepository = (*PostRepo)(nil)

func postToDoc(p *model.Post) memstore.Document {
	d := memstore.Document{
		"communityId":   p.CommunityID,
		"userId":        p.AuthorID,
		"userName":      p.AuthorName,
		"userAvatar":    p.AuthorAvatar,
		"title":         p.Title,
		"content":       p.Content,
		"reactions":     p.Reactions,
		"commentsCount": p.CommentCount,
	}
	if !p.CreatedAt.IsZero() {
		d["createdAt"] = p.CreatedAt
	}
	return d
}

func docToPost(d memstore.Document) model.Post {
	return model.Post{
		ID:           docString(d, "id"),
		CommunityID:  docString(d, "communityId"),
		AuthorID:     docString(d, "userId"),
		AuthorName:   docString(d, "userName"),
		AuthorAvatar: docString(d, "userAvatar"),
		Title:        docString(d, "title"),
		Content:      docString(d, "content"),
		Reactions:    docInt(d, "reactions"),
		CommentCount: docInt(d, "commentsCount"),
		CreatedAt:    docTime(d, "createdAt"),
	}
}

// Create lets the store assign id and createdAt, then copies them back.
func (r *PostRepo) Create(ctx context.Context, post *model.Post) error {
	stored, err := r.store.Create(ctx, colPosts, postToDoc(post))
	if err != nil {
		return err
	}
	post.ID = docString(stored, "id")
	post.CreatedAt = docTime(stored, "createdAt")
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	d, err := r.store.GetByID(ctx, colPosts, id)
	if err != nil {
		return nil, apperror.NotFound("post", id)
	}
	p := docToPost(d)
	return &p, nil
}

func (r *PostRepo) ListByCommunity(ctx context.Context, communityID string) ([]model.Post, error) {
	docs, err := r.store.Find(ctx, memstore.Query{
		Collection: colPosts,
		Field:      "communityId",
		Equals:     communityID,
		OrderBy:    "createdAt",
	})
	if err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, docToPost(d))
	}
	return posts, nil
}

func (r *PostRepo) Upsert(ctx context.Context, post *model.Post) error {
	return r.store.Set(ctx, colPosts, post.ID, postToDoc(post))
}
