package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// GuestUserID is the reserved identity shared by all unauthenticated
// callers. It is provisioned lazily on first anonymous access and is
// never assigned to a registered user.
const GuestUserID UserID = "guest"

// User represents a player account
type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash; empty for the guest user
	CreatedAt    time.Time `json:"created_at"`

	// Running totals, maintained only by score submission.
	// Always equal the count/sum of this user's score records.
	TotalGamesPlayed int `json:"total_games_played"`
	TotalScore       int `json:"total_score"`
}

// IsGuest reports whether this is the shared anonymous identity
func (u *User) IsGuest() bool {
	return u.ID == GuestUserID
}

// NewGuestUser returns the reserved anonymous user record
func NewGuestUser(now time.Time) *User {
	return &User{
		ID:        GuestUserID,
		Username:  "Guest",
		Email:     "guest@example.com",
		CreatedAt: now,
	}
}
