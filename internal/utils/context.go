// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// cookie-value signing, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key used to store the resolved visitor identity
// in the context. The stored value is a models.User; the zero value marks an
// anonymous visitor.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CurrentUserCtxKey, user)
var CurrentUserCtxKey = contextKey("currentUser")

// GetCurrentUserFromContext retrieves the visitor identity from the context.
//
// Returns the models.User and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// An anonymous visitor is represented by a zero models.User with ok == true,
// so callers should combine this with [models.User.IsAnonymous].
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
