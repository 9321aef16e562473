package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/repository"
	"github.com/sakif/wellverse/internal/repository/memory"
)

func newTestStores() Stores {
	repo := memory.New(memstore.New())
	return Stores{
		Users:       repo.Users(),
		Communities: repo.Communities(),
		Posts:       repo.Posts(),
		Moods:       repo.Moods(),
		Resources:   repo.Resources(),
	}
}

func TestApply(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Apply(ctx, stores, logger))

	// The demo account owns the seeded mood history, so it must exist
	// and be reachable by email for password sign-in.
	testUser, err := stores.Users.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "test-uid", testUser.ID)
	assert.Equal(t, "Test User", testUser.DisplayName)
	assert.Equal(t, "This is a test bio.", testUser.Bio)

	admin, err := stores.Users.GetByID(ctx, "wellverse-admin")
	require.NoError(t, err)
	assert.Equal(t, "WellVerse Admin", admin.DisplayName)

	communities, err := stores.Communities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, communities, 4)

	anxietyPosts, err := stores.Posts.ListByCommunity(ctx, "anxiety")
	require.NoError(t, err)
	require.Len(t, anxietyPosts, 3)
	// Newest first: post2 (30m ago) before post1 (2h ago) before the
	// welcome post (2d ago).
	assert.Equal(t, "post2", anxietyPosts[0].ID)
	assert.Equal(t, "demo-post-anxiety-welcome", anxietyPosts[2].ID)

	resources, err := stores.Resources.List(ctx, repository.ResourceFilter{})
	require.NoError(t, err)
	assert.Len(t, resources, 3)

	moods, err := stores.Moods.ListByUser(ctx, "test-uid", 0)
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "mood2", moods[0].ID)
}

func TestApplyIsIdempotent(t *testing.T) {
	stores := newTestStores()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Apply(ctx, stores, logger))
	require.NoError(t, Apply(ctx, stores, logger))

	communities, err := stores.Communities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, communities, 4)

	anxietyPosts, err := stores.Posts.ListByCommunity(ctx, "anxiety")
	require.NoError(t, err)
	assert.Len(t, anxietyPosts, 3)
}
