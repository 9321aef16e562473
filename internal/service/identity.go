// Package service holds the business logic between the HTTP handlers
// and the storage/identity layers. Services validate input, apply the
// domain rules, and never touch HTTP concerns like cookies or status
// codes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/identity"
	"github.com/sakif/wellverse/internal/model"
)

// IdentityService wraps the identity emulator with token issuance, so a
// handler gets the user record and the session JWT in one call.
type IdentityService struct {
	emulator *identity.Emulator
	tokens   *auth.TokenService
	logger   *slog.Logger
}

func NewIdentityService(emulator *identity.Emulator, tokens *auth.TokenService, logger *slog.Logger) *IdentityService {
	return &IdentityService{
		emulator: emulator,
		tokens:   tokens,
		logger:   logger,
	}
}

// AuthResult bundles the user record and the issued JWT so the handler
// can set the cookie and respond in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

func (s *IdentityService) SignUp(ctx context.Context, email, password, displayName string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperror.ValidationFailed("email", "must be a valid email address")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "must not be empty")
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, apperror.ValidationFailed("displayName", "must not be empty")
	}

	user, err := s.emulator.SignUpWithPassword(ctx, email, password, strings.TrimSpace(displayName))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", slog.String("userID", user.ID))
	return s.withToken(user)
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.ValidationFailed("email", "must not be empty")
	}

	user, err := s.emulator.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in", slog.String("userID", user.ID))
	return s.withToken(user)
}

// SignInSocial starts a session for the emulator's built-in social
// placeholder account. The real OAuth callback path goes through
// SignInWithProfile instead.
func (s *IdentityService) SignInSocial(ctx context.Context) (*AuthResult, error) {
	user, err := s.emulator.SignInWithSocialProvider(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in via social placeholder", slog.String("userID", user.ID))
	return s.withToken(user)
}

// SignInWithProfile starts a session for a profile fetched from a real
// identity provider. The provider's stable subject becomes the user ID.
func (s *IdentityService) SignInWithProfile(ctx context.Context, profile *auth.GoogleUser) (*AuthResult, error) {
	if profile == nil {
		return nil, fmt.Errorf("service/identity: provider profile must not be nil")
	}

	avatar := profile.Picture
	if avatar == "" {
		avatar = identity.DefaultAvatarURL(profile.Name)
	}
	user, err := s.emulator.SignInWithAccount(ctx, &model.User{
		ID:          profile.Sub,
		Email:       profile.Email,
		DisplayName: profile.Name,
		AvatarURL:   avatar,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in via provider", slog.String("userID", user.ID))
	return s.withToken(user)
}

func (s *IdentityService) SignOut(ctx context.Context) {
	s.emulator.SignOut(ctx)
}

// CurrentUser returns the session user, or nil when signed out.
func (s *IdentityService) CurrentUser() *model.User {
	return s.emulator.CurrentUser()
}

// UserByID looks up a stored account by its ID.
func (s *IdentityService) UserByID(ctx context.Context, id string) (*model.User, error) {
	return s.emulator.UserByID(ctx, id)
}

// UpdateProfile merges the given fields into the account named by
// userID, the caller's token subject. The emulator session is not
// consulted, so concurrent clients can only edit their own records.
func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, upd model.ProfileUpdate) (*model.User, error) {
	if userID == "" {
		return nil, apperror.NotAuthenticated()
	}
	if upd.DisplayName != nil && strings.TrimSpace(*upd.DisplayName) == "" {
		return nil, apperror.ValidationFailed("displayName", "must not be empty")
	}
	return s.emulator.UpdateProfileFor(ctx, userID, upd)
}

func (s *IdentityService) withToken(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/identity: generating token for user %s: %w", user.ID, err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
