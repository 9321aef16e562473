package model

import "time"

// User is an account record. Email may be empty for social sign-ins that
// hide it; DisplayName and AvatarURL are filled with defaults at sign-up.
type User struct {
	ID           string    `json:"id"           db:"id"`
	Email        string    `json:"email"        db:"email"`
	DisplayName  string    `json:"displayName"  db:"display_name"`
	AvatarURL    string    `json:"avatarUrl"    db:"avatar_url"`
	Bio          string    `json:"bio"          db:"bio"`
	PasswordHash string    `json:"-"            db:"password_hash"` // never serialized
	CreatedAt    time.Time `json:"createdAt"    db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt"    db:"updated_at"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}
