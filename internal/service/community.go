package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

const maxPostTitleLength = 200

// CommunityService covers community listings and their post feeds.
type CommunityService struct {
	communities repository.CommunityRepository
	posts       repository.PostRepository
	users       repository.UserRepository
	logger      *slog.Logger
}

func NewCommunityService(
	communities repository.CommunityRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) *CommunityService {
	return &CommunityService{
		communities: communities,
		posts:       posts,
		users:       users,
		logger:      logger,
	}
}

func (s *CommunityService) List(ctx context.Context) ([]model.Community, error) {
	return s.communities.List(ctx)
}

func (s *CommunityService) Get(ctx context.Context, id string) (*model.Community, error) {
	return s.communities.GetByID(ctx, id)
}

// ListPosts returns the community's posts newest first. An unknown
// community is an error, not an empty feed.
func (s *CommunityService) ListPosts(ctx context.Context, communityID string) ([]model.Post, error) {
	if _, err := s.communities.GetByID(ctx, communityID); err != nil {
		return nil, err
	}
	return s.posts.ListByCommunity(ctx, communityID)
}

// CreatePost validates and stores a new post by authorID. The author's
// current name and avatar are copied onto the post, so feeds render
// without an extra lookup per post.
func (s *CommunityService) CreatePost(ctx context.Context, communityID, authorID, title, content string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "must not be empty")
	}
	if len(title) > maxPostTitleLength {
		return nil, apperror.ValidationFailed("title", "must be at most 200 characters")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ValidationFailed("content", "must not be empty")
	}

	if _, err := s.communities.GetByID(ctx, communityID); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		CommunityID:  communityID,
		AuthorID:     author.ID,
		AuthorName:   author.DisplayName,
		AuthorAvatar: author.AvatarURL,
		Title:        title,
		Content:      strings.TrimSpace(content),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		slog.String("postID", post.ID),
		slog.String("communityID", communityID),
		slog.String("authorID", authorID),
	)
	return post, nil
}
