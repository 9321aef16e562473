// Package identity emulates an external identity provider: it holds at
// most one current session, offers the provider's sign-in/sign-up/
// sign-out/profile-update lifecycle, and broadcasts every state change
// through an Observable. User records live in the injected
// UserRepository, so the emulator works unchanged over the document-store
// emulation and over the real backend.
//
// Emulation contract: a password sign-in succeeds for any password as
// long as the email is known, matching the development provider this
// replaces. Passwords are still bcrypt-hashed at sign-up so the store
// carries real hashes by the time verification is turned on.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

// The deterministic account used when social sign-in runs without a
// configured OAuth provider. Created on first use.
const (
	SocialUserID      = "google-uid"
	socialEmail       = "googleuser@example.com"
	socialDisplayName = "Google User"
	socialAvatarURL   = "https://placehold.co/100x100.png"
)

// DefaultAvatarURL builds the placeholder avatar used when an account has
// no picture: the display name's first character on a neutral tile.
func DefaultAvatarURL(displayName string) string {
	initial := ""
	for _, r := range displayName {
		initial = string(r)
		break
	}
	return fmt.Sprintf("https://placehold.co/100x100.png?text=%s", initial)
}

// Emulator is the identity provider stand-in. All methods are safe for
// concurrent use; transitions are serialized, and subscribers observe
// them in the order they occurred.
type Emulator struct {
	mu        sync.Mutex
	users     repository.UserRepository
	passwords *auth.PasswordService
	states    *Observable[*model.User]
	logger    *slog.Logger
}

// NewEmulator creates a signed-out emulator. passwords may be nil, in
// which case sign-up stores no hash.
func NewEmulator(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *Emulator {
	return &Emulator{
		users:     users,
		passwords: passwords,
		states:    NewObservable[*model.User](nil),
		logger:    logger,
	}
}

// CurrentUser returns a snapshot of the signed-in user, or nil.
func (e *Emulator) CurrentUser() *model.User {
	cur := e.states.Current()
	if cur == nil {
		return nil
	}
	snapshot := *cur
	return &snapshot
}

// Subscribe delivers the current auth state once, asynchronously, then
// every subsequent transition until the returned function is called.
func (e *Emulator) Subscribe(fn func(*model.User)) func() {
	return e.states.Subscribe(fn)
}

// UserByID looks up a stored account without touching the session.
func (e *Emulator) UserByID(ctx context.Context, id string) (*model.User, error) {
	return e.users.GetByID(ctx, id)
}

// SignInWithPassword signs in the account registered under email. The
// password is accepted without verification (see the package comment);
// an unknown email is InvalidCredentials.
func (e *Emulator) SignInWithPassword(ctx context.Context, email, password string) (*model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("identity: looking up %s: %w", email, err)
	}

	e.setSession(user)
	e.logger.Info("user signed in", slog.String("userID", user.ID))
	snapshot := *user
	return &snapshot, nil
}

// SignUpWithPassword registers a new account and signs it in. A taken
// email is EmailInUse. The avatar defaults to a placeholder derived from
// the display name's initial.
func (e *Emulator) SignUpWithPassword(ctx context.Context, email, password, displayName string) (*model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperror.EmailInUse(email)
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("identity: looking up %s: %w", email, err)
	}

	user := &model.User{
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   DefaultAvatarURL(displayName),
	}
	if e.passwords != nil {
		hash, err := e.passwords.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("identity: hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := e.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("identity: creating user: %w", err)
	}

	e.setSession(user)
	e.logger.Info("user signed up", slog.String("userID", user.ID), slog.String("email", email))
	snapshot := *user
	return &snapshot, nil
}

// SignInWithSocialProvider signs in the deterministic placeholder
// account, creating its user record on first use.
func (e *Emulator) SignInWithSocialProvider(ctx context.Context) (*model.User, error) {
	return e.SignInWithAccount(ctx, &model.User{
		ID:          SocialUserID,
		Email:       socialEmail,
		DisplayName: socialDisplayName,
		AvatarURL:   socialAvatarURL,
	})
}

// SignInWithAccount upserts a provider-sourced account under its stable
// ID and signs it in. The real OAuth callback lands here; the emulated
// social flow uses it with the placeholder profile. An existing record's
// bio and hash are preserved across repeat sign-ins.
func (e *Emulator) SignInWithAccount(ctx context.Context, account *model.User) (*model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user := account
	if existing, err := e.users.GetByID(ctx, account.ID); err == nil {
		existing.Email = account.Email
		existing.DisplayName = account.DisplayName
		if account.AvatarURL != "" {
			existing.AvatarURL = account.AvatarURL
		}
		user = existing
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("identity: looking up %s: %w", account.ID, err)
	}

	if err := e.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("identity: upserting %s: %w", user.ID, err)
	}

	e.setSession(user)
	e.logger.Info("user signed in via social provider", slog.String("userID", user.ID))
	snapshot := *user
	return &snapshot, nil
}

// SignOut clears the session. Signing out while signed out is a no-op
// transition that subscribers still observe.
func (e *Emulator) SignOut(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.states.Publish(nil)
	e.logger.Info("user signed out")
}

// UpdateProfile merges the given fields into both the session and the
// stored user record. Requires an active session.
func (e *Emulator) UpdateProfile(ctx context.Context, upd model.ProfileUpdate) (*model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.states.Current()
	if cur == nil {
		return nil, apperror.NotAuthenticated()
	}
	return e.applyProfile(ctx, cur.ID, upd)
}

// UpdateProfileFor merges the given fields into the account stored under
// id, whether or not that account holds the session. Each authenticated
// HTTP client edits its own record this way; the single emulator session
// only follows along when it belongs to the same account.
func (e *Emulator) UpdateProfileFor(ctx context.Context, id string, upd model.ProfileUpdate) (*model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.applyProfile(ctx, id, upd)
}

// applyProfile writes the merge and republishes a matching session.
// Callers hold e.mu.
func (e *Emulator) applyProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.User, error) {
	user, err := e.users.UpdateProfile(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("identity: updating profile of %s: %w", id, err)
	}

	if cur := e.states.Current(); cur != nil && cur.ID == user.ID {
		e.setSession(user)
	}
	e.logger.Info("profile updated", slog.String("userID", user.ID))
	snapshot := *user
	return &snapshot, nil
}

// setSession publishes a copy of user as the new auth state. Callers hold e.mu.
func (e *Emulator) setSession(user *model.User) {
	snapshot := *user
	e.states.Publish(&snapshot)
}
