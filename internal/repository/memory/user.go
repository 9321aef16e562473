package memory

import (
	"context"
	"time"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

type UserRepo struct {
	store *memstore.Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

func userToDoc(u *model.User) memstore.Document {
	return memstore.Document{
		"email":        u.Email,
		"displayName":  u.DisplayName,
		"avatarUrl":    u.AvatarURL,
		"bio":          u.Bio,
		"passwordHash": u.PasswordHash,
		"createdAt":    u.CreatedAt,
		"updatedAt":    u.UpdatedAt,
	}
}

func docToUser(d memstore.Document) *model.User {
	return &model.User{
		ID:           docString(d, "id"),
		Email:        docString(d, "email"),
		DisplayName:  docString(d, "displayName"),
		AvatarURL:    docString(d, "avatarUrl"),
		Bio:          docString(d, "bio"),
		PasswordHash: docString(d, "passwordHash"),
		CreatedAt:    docTime(d, "createdAt"),
		UpdatedAt:    docTime(d, "updatedAt"),
	}
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored, err := r.store.Create(ctx, colUsers, userToDoc(user))
	if err != nil {
		return err
	}
	user.ID = docString(stored, "id")
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	d, err := r.store.GetByID(ctx, colUsers, id)
	if err != nil {
		return nil, apperror.NotFound("user", id)
	}
	return docToUser(d), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := r.store.Find(ctx, memstore.Query{
		Collection: colUsers,
		Field:      "email",
		Equals:     email,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperror.NotFound("user", email)
	}
	return docToUser(docs[0]), nil
}

func (r *UserRepo) Upsert(ctx context.Context, user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = time.Now()
	return r.store.Set(ctx, colUsers, user.ID, userToDoc(user))
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.User, error) {
	partial := memstore.Document{"updatedAt": time.Now()}
	if upd.DisplayName != nil {
		partial["displayName"] = *upd.DisplayName
	}
	if upd.AvatarURL != nil {
		partial["avatarUrl"] = *upd.AvatarURL
	}
	if upd.Bio != nil {
		partial["bio"] = *upd.Bio
	}

	if err := r.store.Update(ctx, colUsers, id, partial); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
