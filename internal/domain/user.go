package domain

import "time"

// Auth providers recorded on a user account.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the domain entity for a user account. PasswordHash is nil for
// accounts created via Google login; GoogleID is nil for local-only accounts.
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   *string
	GoogleID       *string
	ProfilePicture *string
	AuthProvider   string
	CreatedAt      time.Time
}
