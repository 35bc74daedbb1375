package models

import "time"

// Session is the server-side record behind the single session cookie.
// A session is live while ExpiresAt is in the future and RevokedAt is nil.
type Session struct {
	// ID is the opaque session identifier stored in the cookie (a UUID).
	ID string

	// UserID references the authenticated user bound to this session.
	UserID int64

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time

	// ExpiresAt is the moment after which the session no longer
	// authenticates requests.
	ExpiresAt time.Time

	// RevokedAt is set when the user logs out or a newer session
	// supersedes this one.
	RevokedAt *time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Live reports whether the session authenticates requests at the given moment.
func (s Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
