package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard operator account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's login (unique).
	Email string

	// DisplayName is shown in the dashboard header.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Active operators may sign in. New accounts wait for an admin to
	// activate them, except the very first one.
	Active bool

	// IsAdmin operators manage other operator accounts.
	IsAdmin bool

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// NewUser builds an inactive, non-admin user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PasswordReset is a pending password reset. Only the SHA-256 of the token
// sent to the user is kept.
type PasswordReset struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the reset can no longer be used at now.
func (r *PasswordReset) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
