package models

import "time"

// User represents a registered account used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user. The first account
	// ever created (ID == 1) is the bootstrap administrator.
	ID int64

	// Email is the unique address the user registered with.
	// Used as the login identifier during authentication.
	Email string

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	PasswordHash string

	// Name is the display name of the user.
	// It is non-sensitive and shown next to posts and comments.
	Name string

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAnonymous reports whether the value describes an unauthenticated visitor.
func (u User) IsAnonymous() bool {
	return u.ID == 0
}
