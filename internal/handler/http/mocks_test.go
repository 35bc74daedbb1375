package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/require"
)

// Hand-rolled service mocks shared by the handler tests. Each method
// delegates to an optional function field; a nil field falls back to the
// behavior an empty system would have.

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, email, password, name string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email, password, name string) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, email, password, name)
	}
	return models.User{ID: 2, Email: email, Name: name}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{ID: 2, Email: email}, nil
}

// ─────────────────────────────────────────────
// Mock: service.SessionService
// ─────────────────────────────────────────────

type mockSessionService struct {
	establishFn func(ctx context.Context, user models.User) (models.Session, error)
	resolveFn   func(ctx context.Context, sessionID string) (models.User, error)
	revokeFn    func(ctx context.Context, sessionID string) error
}

func (m *mockSessionService) Establish(ctx context.Context, user models.User) (models.Session, error) {
	if m.establishFn != nil {
		return m.establishFn(ctx, user)
	}
	return models.Session{ID: "test-session", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockSessionService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, sessionID)
	}
	return models.User{}, service.ErrNoActiveSession
}

func (m *mockSessionService) Revoke(ctx context.Context, sessionID string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, sessionID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.BlogService
// ─────────────────────────────────────────────

type mockBlogService struct {
	listPostsFn    func(ctx context.Context) ([]models.BlogPost, error)
	getPostFn      func(ctx context.Context, id int64) (models.BlogPost, error)
	createPostFn   func(ctx context.Context, post models.BlogPost, authorID int64) (models.BlogPost, error)
	updatePostFn   func(ctx context.Context, post models.BlogPost, editorID int64) error
	deletePostFn   func(ctx context.Context, id int64) error
	addCommentFn   func(ctx context.Context, postID, authorID int64, text string) (models.Comment, error)
	listCommentsFn func(ctx context.Context, postID int64) ([]models.Comment, error)
}

func (m *mockBlogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx)
	}
	return nil, nil
}

func (m *mockBlogService) GetPost(ctx context.Context, id int64) (models.BlogPost, error) {
	if m.getPostFn != nil {
		return m.getPostFn(ctx, id)
	}
	return models.BlogPost{ID: id, Title: "First", Subtitle: "sub", Body: "text", ImgURL: "img", AuthorName: "Jane"}, nil
}

func (m *mockBlogService) CreatePost(ctx context.Context, post models.BlogPost, authorID int64) (models.BlogPost, error) {
	if m.createPostFn != nil {
		return m.createPostFn(ctx, post, authorID)
	}
	post.ID = 5
	post.AuthorID = authorID
	return post, nil
}

func (m *mockBlogService) UpdatePost(ctx context.Context, post models.BlogPost, editorID int64) error {
	if m.updatePostFn != nil {
		return m.updatePostFn(ctx, post, editorID)
	}
	return nil
}

func (m *mockBlogService) DeletePost(ctx context.Context, id int64) error {
	if m.deletePostFn != nil {
		return m.deletePostFn(ctx, id)
	}
	return nil
}

func (m *mockBlogService) AddComment(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, postID, authorID, text)
	}
	return models.Comment{ID: 9, PostID: postID, AuthorID: authorID, Text: text}, nil
}

func (m *mockBlogService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, postID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		SecretKey:         "test-secret",
		SessionCookieName: "session_id",
		SessionDuration:   time.Hour,
	}
}

// newTestHandler builds a Handler over the given mocks, substituting empty
// mocks for any service left nil.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.SessionService == nil {
		services.SessionService = &mockSessionService{}
	}
	if services.BlogService == nil {
		services.BlogService = &mockBlogService{}
	}

	h, err := NewHandler(services, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return h
}

// signIn attaches a correctly signed session cookie to the request. Who the
// session resolves to is up to the test's SessionService mock.
func signIn(h *Handler, r *http.Request, sessionID string) {
	r.AddCookie(&http.Cookie{
		Name:  h.cfg.SessionCookieName,
		Value: utils.SignString(sessionID, h.cfg.SecretKey),
	})
}

// formRequest builds a POST request with an urlencoded form body.
func formRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// resolveAs returns a SessionService mock that maps the given session id to
// the given user and rejects everything else.
func resolveAs(sessionID string, user models.User) *mockSessionService {
	return &mockSessionService{
		resolveFn: func(ctx context.Context, id string) (models.User, error) {
			if id == sessionID {
				return user, nil
			}
			return models.User{}, service.ErrNoActiveSession
		},
	}
}
