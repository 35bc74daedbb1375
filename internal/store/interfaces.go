package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// UserRepository provides persistence for registered accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Yields [ErrUserNotFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Yields [ErrUserNotFound] when no such account exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// PostRepository provides persistence for blog posts.
type PostRepository interface {
	// CreatePost persists a new post and returns it with a server-assigned
	// ID. A duplicate title yields [ErrPostTitleExists].
	CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)

	// GetPost fetches one post (author name included) by its identifier.
	// Yields [ErrPostNotFound] when no such post exists.
	GetPost(ctx context.Context, id int64) (models.BlogPost, error)

	// ListPosts fetches every post with its author name, in id order.
	ListPosts(ctx context.Context) ([]models.BlogPost, error)

	// UpdatePost overwrites the mutable columns of an existing post.
	// Yields [ErrPostNotFound] when no such post exists and
	// [ErrPostTitleExists] when the new title duplicates another post's.
	UpdatePost(ctx context.Context, post models.BlogPost) error

	// DeletePost removes a post (its comments cascade at the schema level).
	// Yields [ErrPostNotFound] when no such post exists.
	DeletePost(ctx context.Context, id int64) error
}

// CommentRepository provides persistence for reader comments.
type CommentRepository interface {
	// CreateComment persists a new comment and returns it with a
	// server-assigned ID.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListCommentsByPost fetches all comments of a post (author names
	// included), oldest first.
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

// SessionRepository provides persistence for server-side login sessions.
type SessionRepository interface {
	// CreateSession persists a new session record.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession fetches a session by its identifier.
	// Yields [ErrSessionNotFound] when no such session exists.
	GetSession(ctx context.Context, id string) (models.Session, error)

	// RevokeSession marks one session as revoked.
	RevokeSession(ctx context.Context, id string) error

	// RevokeUserSessions marks every live session of the user as revoked.
	RevokeUserSessions(ctx context.Context, userID int64) error
}
