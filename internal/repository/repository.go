// Package repository defines the storage interfaces the rest of the app
// depends on. Two drivers implement them: repository/memory (the
// document-store emulation used during development) and repository/sqlite
// (the real backend). Services only ever see these interfaces.
package repository

import (
	"context"

	"github.com/sakif/wellverse/internal/model"
)

// MoodHistoryLimit caps how many entries a mood history read returns.
const MoodHistoryLimit = 30

type UserRepository interface {
	// Create stores a new user, assigning ID and timestamps.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail returns apperror.NotFound when no account has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Upsert writes a user under its existing ID, inserting when absent.
	// Social sign-in uses this with provider-stable IDs.
	Upsert(ctx context.Context, user *model.User) error
	// UpdateProfile merges the non-nil fields and returns the result.
	// Returns apperror.NotFound when the user does not exist.
	UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.User, error)
}

type CommunityRepository interface {
	List(ctx context.Context) ([]model.Community, error)
	GetByID(ctx context.Context, id string) (*model.Community, error)
	// Upsert exists for seeding; communities are fixture data.
	Upsert(ctx context.Context, community *model.Community) error
}

type PostRepository interface {
	// Create stores a new post, assigning ID and creation timestamp.
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	// ListByCommunity returns the community's posts newest first.
	ListByCommunity(ctx context.Context, communityID string) ([]model.Post, error)
	// Upsert exists for seeding demo posts under fixed IDs.
	Upsert(ctx context.Context, post *model.Post) error
}

type MoodRepository interface {
	Create(ctx context.Context, entry *model.MoodEntry) error
	// ListByUser returns the user's entries newest first, capped at limit
	// (0 means MoodHistoryLimit).
	ListByUser(ctx context.Context, userID string, limit int) ([]model.MoodEntry, error)
	// Upsert exists for seeding demo entries under fixed IDs.
	Upsert(ctx context.Context, entry *model.MoodEntry) error
}

// ResourceFilter narrows a library listing. Empty fields match everything.
type ResourceFilter struct {
	Topic string
	Type  string
}

type ResourceRepository interface {
	List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error)
	// Upsert exists for seeding; resources are fixture data.
	Upsert(ctx context.Context, resource *model.Resource) error
}
