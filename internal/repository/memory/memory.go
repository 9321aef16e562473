// Package memory implements the repository interfaces on top of the
// memstore document-store emulation. This is the development driver: the
// app talks to it exactly as it talks to the sqlite driver, which is what
// lets the emulated backend be swapped out without touching services.
package memory

import (
	"time"

	"github.com/sakif/wellverse/internal/memstore"
)

// Collection names used in the document store.
const (
	colUsers       = "users"
	colCommunities = "communities"
	colPosts       = "posts"
	colMoodEntries = "moodEntries"
	colResources   = "resources"
)

// Repo bundles the per-entity repositories sharing one memstore.
type Repo struct {
	store *memstore.Store
}

// New wraps a store. The caller owns the store's lifecycle.
func New(store *memstore.Store) *Repo {
	return &Repo{store: store}
}

func (r *Repo) Users() *UserRepo            { return &UserRepo{store: r.store} }
func (r *Repo) Communities() *CommunityRepo { return &CommunityRepo{store: r.store} }
func (r *Repo) Posts() *PostRepo            { return &PostRepo{store: r.store} }
func (r *Repo) Moods() *MoodRepo            { return &MoodRepo{store: r.store} }
func (r *Repo) Resources() *ResourceRepo    { return &ResourceRepo{store: r.store} }

// Document field accessors. Documents are schemaless, so reads tolerate
// missing or mistyped fields by zero-valuing them.

func docString(d memstore.Document, key string) string {
	v, _ := d[key].(string)
	return v
}

func docInt(d memstore.Document, key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func docTime(d memstore.Document, key string) time.Time {
	v, _ := d[key].(time.Time)
	return v
}
