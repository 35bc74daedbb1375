package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm() url.Values {
	return url.Values{
		"title":    {"First"},
		"subtitle": {"sub"},
		"img_url":  {"https://example.com/img.png"},
		"body":     {"text"},
	}
}

// adminHandler builds a handler whose "admin-session" cookie resolves to the
// bootstrap admin account.
func adminHandler(t *testing.T, blog *mockBlogService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		SessionService: resolveAs("admin-session", models.User{ID: bootstrapAdminID, Name: "Jane"}),
		BlogService:    blog,
	})
}

func adminRequest(h *Handler, r *http.Request) *http.Request {
	signIn(h, r, "admin-session")
	return r
}

// ─────────────────────────────────────────────
// index / showPost
// ─────────────────────────────────────────────

func TestIndex_ListsPosts(t *testing.T) {
	blog := &mockBlogService{
		listPostsFn: func(ctx context.Context) ([]models.BlogPost, error) {
			return []models.BlogPost{
				{ID: 1, Title: "First", Subtitle: "s1", AuthorName: "Jane", Date: "August 30, 2026"},
				{ID: 2, Title: "Second", Subtitle: "s2", AuthorName: "Jane", Date: "August 31, 2026"},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BlogService: blog})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "Second")
}

func TestShowPost_RendersPostAndComments(t *testing.T) {
	blog := &mockBlogService{
		listCommentsFn: func(ctx context.Context, postID int64) ([]models.Comment, error) {
			return []models.Comment{{ID: 1, PostID: postID, Text: "nice post", AuthorName: "Bob"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BlogService: blog})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First")
	assert.Contains(t, rec.Body.String(), "nice post")
	assert.Contains(t, rec.Body.String(), "Bob")
}

func TestShowPost_NonNumericID(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowPost_Missing(t *testing.T) {
	blog := &mockBlogService{
		getPostFn: func(ctx context.Context, id int64) (models.BlogPost, error) {
			return models.BlogPost{}, store.ErrPostNotFound
		},
	}
	h := newTestHandler(t, &service.Services{BlogService: blog})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// addComment
// ─────────────────────────────────────────────

func TestAddComment_Anonymous_RedirectsToLogin(t *testing.T) {
	blog := &mockBlogService{
		addCommentFn: func(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
			t.Fatal("AddComment must not be called for anonymous visitors")
			return models.Comment{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BlogService: blog})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, formRequest("/post/5", url.Values{"body": {"nice post"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	require.NotNil(t, findCookie(rec, flashCookieName))
}

func TestAddComment_SignedIn_RedirectsBackToPost(t *testing.T) {
	var gotAuthorID int64
	var gotText string
	blog := &mockBlogService{
		addCommentFn: func(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
			gotAuthorID = authorID
			gotText = text
			return models.Comment{ID: 9, PostID: postID, AuthorID: authorID, Text: text}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		SessionService: resolveAs("user-session", models.User{ID: 2, Name: "Bob"}),
		BlogService:    blog,
	})

	req := formRequest("/post/5", url.Values{"body": {"nice post"}})
	signIn(h, req, "user-session")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/post/5", rec.Header().Get("Location"))
	assert.Equal(t, int64(2), gotAuthorID)
	assert.Equal(t, "nice post", gotText)
}

func TestAddComment_PostGone(t *testing.T) {
	blog := &mockBlogService{
		addCommentFn: func(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		SessionService: resolveAs("user-session", models.User{ID: 2}),
		BlogService:    blog,
	})

	req := formRequest("/post/404", url.Values{"body": {"nice post"}})
	signIn(h, req, "user-session")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// admin gate
// ─────────────────────────────────────────────

func TestAdminRoutes_ForbiddenForAnonymous(t *testing.T) {
	h := newTestHandler(t, nil)
	router := h.Init()

	for _, target := range []string{"/new-post", "/edit-post/5", "/delete/5"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equalf(t, http.StatusForbidden, rec.Code, "expected %s to be forbidden", target)
	}
}

func TestAdminRoutes_ForbiddenForRegularUser(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		SessionService: resolveAs("user-session", models.User{ID: 2, Name: "Bob"}),
	})
	router := h.Init()

	for _, target := range []string{"/new-post", "/edit-post/5", "/delete/5"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		signIn(h, req, "user-session")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equalf(t, http.StatusForbidden, rec.Code, "expected %s to be forbidden", target)
	}
}

func TestShowNewPost_AllowedForAdmin(t *testing.T) {
	h := adminHandler(t, &mockBlogService{})

	req := adminRequest(h, httptest.NewRequest(http.MethodGet, "/new-post", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/new-post"`)
}

// ─────────────────────────────────────────────
// createPost / editPost / deletePost
// ─────────────────────────────────────────────

func TestCreatePost_Success_RedirectsToPost(t *testing.T) {
	h := adminHandler(t, &mockBlogService{})

	req := adminRequest(h, formRequest("/new-post", postForm()))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/post/5", rec.Header().Get("Location"))
}

func TestCreatePost_TitleTaken_RerendersFormWithNotice(t *testing.T) {
	blog := &mockBlogService{
		createPostFn: func(ctx context.Context, post models.BlogPost, authorID int64) (models.BlogPost, error) {
			return models.BlogPost{}, store.ErrPostTitleExists
		},
	}
	h := adminHandler(t, blog)

	req := adminRequest(h, formRequest("/new-post", postForm()))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgTitleTaken)
	// the submitted values survive the round trip
	assert.Contains(t, rec.Body.String(), "First")
}

func TestEditPost_Success_RedirectsToPost(t *testing.T) {
	var editedID int64
	var editorID int64
	blog := &mockBlogService{
		updatePostFn: func(ctx context.Context, post models.BlogPost, editor int64) error {
			editedID = post.ID
			editorID = editor
			return nil
		},
	}
	h := adminHandler(t, blog)

	req := adminRequest(h, formRequest("/edit-post/5", postForm()))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/post/5", rec.Header().Get("Location"))
	assert.Equal(t, int64(5), editedID)
	assert.Equal(t, int64(bootstrapAdminID), editorID)
}

func TestEditPost_Missing(t *testing.T) {
	blog := &mockBlogService{
		updatePostFn: func(ctx context.Context, post models.BlogPost, editor int64) error {
			return store.ErrPostNotFound
		},
	}
	h := adminHandler(t, blog)

	req := adminRequest(h, formRequest("/edit-post/404", postForm()))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost_RedirectsHome(t *testing.T) {
	var deletedID int64
	blog := &mockBlogService{
		deletePostFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := adminHandler(t, blog)

	req := adminRequest(h, httptest.NewRequest(http.MethodGet, "/delete/5", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, int64(5), deletedID)
}

func TestDeletePost_AlreadyGone_StillRedirectsHome(t *testing.T) {
	blog := &mockBlogService{
		deletePostFn: func(ctx context.Context, id int64) error {
			return store.ErrPostNotFound
		},
	}
	h := adminHandler(t, blog)

	req := adminRequest(h, httptest.NewRequest(http.MethodGet, "/delete/404", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
