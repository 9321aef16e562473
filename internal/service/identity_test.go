package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/identity"
	"github.com/sakif/wellverse/internal/memstore"
	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository/memory"
)

func profileUpdate(name, avatar, bio *string) model.ProfileUpdate {
	return model.ProfileUpdate{DisplayName: name, AvatarURL: avatar, Bio: bio}
}

func newIdentityFixture(t *testing.T) (*IdentityService, *auth.TokenService) {
	t.Helper()
	users := memory.New(memstore.New()).Users()
	emulator := identity.NewEmulator(users, auth.NewPasswordServiceForTest(bcrypt.MinCost), discardLogger())
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	if err != nil {
		t.Fatalf("creating token service: %v", err)
	}
	return NewIdentityService(emulator, tokens, discardLogger()), tokens
}

func TestSignUpIssuesToken(t *testing.T) {
	svc, tokens := newIdentityFixture(t)

	res, err := svc.SignUp(context.Background(), "maya@example.com", "secret", "Maya")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if res.User.Email != "maya@example.com" {
		t.Errorf("user email = %q", res.User.Email)
	}
	// The token must round-trip back to the new user's ID.
	userID, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if userID != res.User.ID {
		t.Errorf("token user ID = %q, want %q", userID, res.User.ID)
	}
}

func TestSignUp_Validation(t *testing.T) {
	svc, _ := newIdentityFixture(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		email       string
		password    string
		displayName string
	}{
		{"bad email", "not-an-email", "secret", "Maya"},
		{"empty email", "", "secret", "Maya"},
		{"empty password", "maya@example.com", "", "Maya"},
		{"empty display name", "maya@example.com", "secret", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password, tt.displayName)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("SignUp() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSignInAfterSignUp(t *testing.T) {
	svc, _ := newIdentityFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "sam@example.com", "secret", "Sam")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	res, err := svc.SignIn(ctx, "sam@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if res.User.ID != created.User.ID {
		t.Errorf("signed-in user ID = %q, want %q", res.User.ID, created.User.ID)
	}
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	_, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("SignIn() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignInSocial(t *testing.T) {
	svc, tokens := newIdentityFixture(t)

	res, err := svc.SignInSocial(context.Background())
	if err != nil {
		t.Fatalf("SignInSocial() error = %v", err)
	}
	if res.User.ID != identity.SocialUserID {
		t.Errorf("social user ID = %q, want %q", res.User.ID, identity.SocialUserID)
	}
	if _, err := tokens.Validate(res.Token); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSignInWithProfile(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	res, err := svc.SignInWithProfile(context.Background(), &auth.GoogleUser{
		Sub:   "sub-123",
		Email: "ira@example.com",
		Name:  "Ira",
	})
	if err != nil {
		t.Fatalf("SignInWithProfile() error = %v", err)
	}
	if res.User.ID != "sub-123" {
		t.Errorf("user ID = %q, want provider subject", res.User.ID)
	}
	// No picture in the profile, so the default avatar kicks in.
	if res.User.AvatarURL != identity.DefaultAvatarURL("Ira") {
		t.Errorf("avatar = %q, want default", res.User.AvatarURL)
	}
}

func TestUpdateProfile_RequiresUserID(t *testing.T) {
	svc, _ := newIdentityFixture(t)

	name := "New Name"
	_, err := svc.UpdateProfile(context.Background(), "", profileUpdate(&name, nil, nil))
	if !errors.Is(err, apperror.ErrNotAuthenticated) {
		t.Errorf("UpdateProfile() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newIdentityFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "maya@example.com", "secret", "Maya")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	bio := "one day at a time"
	updated, err := svc.UpdateProfile(ctx, created.User.ID, profileUpdate(nil, nil, &bio))
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("bio = %q, want %q", updated.Bio, bio)
	}
	if updated.DisplayName != "Maya" {
		t.Errorf("display name = %q, want unchanged", updated.DisplayName)
	}

	svc.SignOut(ctx)
	if svc.CurrentUser() != nil {
		t.Error("CurrentUser() after SignOut is not nil")
	}
}

// Whoever signed in last must not absorb another account's edit. The
// update is keyed by the caller's token subject, not the session.
func TestUpdateProfile_TargetsTokenOwner(t *testing.T) {
	svc, _ := newIdentityFixture(t)
	ctx := context.Background()

	alice, err := svc.SignUp(ctx, "alice@example.com", "secret", "Alice")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if _, err := svc.SignUp(ctx, "bob@example.com", "secret", "Bob"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	bio := "alice was here"
	updated, err := svc.UpdateProfile(ctx, alice.User.ID, profileUpdate(nil, nil, &bio))
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.ID != alice.User.ID || updated.DisplayName != "Alice" {
		t.Errorf("updated user = %q (%s), want Alice", updated.DisplayName, updated.ID)
	}

	bob, err := svc.UserByID(ctx, svc.CurrentUser().ID)
	if err != nil {
		t.Fatalf("UserByID() error = %v", err)
	}
	if bob.Bio != "" {
		t.Errorf("Bob's bio = %q, want untouched", bob.Bio)
	}
	stored, err := svc.UserByID(ctx, alice.User.ID)
	if err != nil {
		t.Fatalf("UserByID() error = %v", err)
	}
	if stored.Bio != bio {
		t.Errorf("Alice's stored bio = %q, want %q", stored.Bio, bio)
	}
}
