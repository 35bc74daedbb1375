package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// RegisterUser creates a new account with a bcrypt-hashed password.
	// A taken email yields [store.ErrEmailAlreadyExists].
	RegisterUser(ctx context.Context, email, password, name string) (models.User, error)

	// Login verifies the given credentials. An unknown email yields
	// [store.ErrUserNotFound]; a failed hash check yields [ErrWrongPassword].
	Login(ctx context.Context, email, password string) (models.User, error)
}

// SessionService binds authenticated users to server-side sessions.
type SessionService interface {
	// Establish revokes the user's previous live sessions and opens a new
	// one, returning the record whose ID goes into the cookie.
	Establish(ctx context.Context, user models.User) (models.Session, error)

	// Resolve maps a session identifier to its user, fetched fresh from
	// the credential store. A missing, expired or revoked session yields
	// [ErrNoActiveSession]; a live session whose user cannot be loaded is
	// a hard error, not an anonymous result.
	Resolve(ctx context.Context, sessionID string) (models.User, error)

	// Revoke invalidates the session with the given identifier.
	Revoke(ctx context.Context, sessionID string) error
}

// BlogService covers the post and comment surface of the application.
type BlogService interface {
	// ListPosts returns every post for the index page.
	ListPosts(ctx context.Context) ([]models.BlogPost, error)

	// GetPost returns one post by id. Yields [store.ErrPostNotFound] when
	// absent.
	GetPost(ctx context.Context, id int64) (models.BlogPost, error)

	// CreatePost publishes a new post authored by authorID, stamping
	// today's display date.
	CreatePost(ctx context.Context, post models.BlogPost, authorID int64) (models.BlogPost, error)

	// UpdatePost overwrites an existing post's content. The recorded
	// author becomes editorID.
	UpdatePost(ctx context.Context, post models.BlogPost, editorID int64) error

	// DeletePost removes a post and, via the schema, its comments.
	DeletePost(ctx context.Context, id int64) error

	// AddComment attaches a comment by authorID to the given post.
	AddComment(ctx context.Context, postID, authorID int64, text string) (models.Comment, error)

	// ListComments returns all comments of a post, oldest first.
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
}
