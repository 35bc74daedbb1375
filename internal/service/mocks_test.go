package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/models"
)

// Hand-rolled repository mocks shared by the service tests. Each method
// delegates to an optional function field so a test only wires the calls it
// cares about.

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, id)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.PostRepository
// ─────────────────────────────────────────────

type mockPostRepository struct {
	createPostFn func(ctx context.Context, post models.BlogPost) (models.BlogPost, error)
	getPostFn    func(ctx context.Context, id int64) (models.BlogPost, error)
	listPostsFn  func(ctx context.Context) ([]models.BlogPost, error)
	updatePostFn func(ctx context.Context, post models.BlogPost) error
	deletePostFn func(ctx context.Context, id int64) error
}

func (m *mockPostRepository) CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	if m.createPostFn != nil {
		return m.createPostFn(ctx, post)
	}
	return post, nil
}

func (m *mockPostRepository) GetPost(ctx context.Context, id int64) (models.BlogPost, error) {
	if m.getPostFn != nil {
		return m.getPostFn(ctx, id)
	}
	return models.BlogPost{ID: id}, nil
}

func (m *mockPostRepository) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) UpdatePost(ctx context.Context, post models.BlogPost) error {
	if m.updatePostFn != nil {
		return m.updatePostFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id int64) error {
	if m.deletePostFn != nil {
		return m.deletePostFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createCommentFn      func(ctx context.Context, comment models.Comment) (models.Comment, error)
	listCommentsByPostFn func(ctx context.Context, postID int64) ([]models.Comment, error)
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listCommentsByPostFn != nil {
		return m.listCommentsByPostFn(ctx, postID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn      func(ctx context.Context, session models.Session) error
	getSessionFn         func(ctx context.Context, id string) (models.Session, error)
	revokeSessionFn      func(ctx context.Context, id string) error
	revokeUserSessionsFn func(ctx context.Context, userID int64) error
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetSession(ctx context.Context, id string) (models.Session, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx, id)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) RevokeSession(ctx context.Context, id string) error {
	if m.revokeSessionFn != nil {
		return m.revokeSessionFn(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) RevokeUserSessions(ctx context.Context, userID int64) error {
	if m.revokeUserSessionsFn != nil {
		return m.revokeUserSessionsFn(ctx, userID)
	}
	return nil
}
