package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteTestDB opens a migrated SQLite database in a temp dir. Idle
// pooling is disabled so every statement runs on a freshly opened
// connection, which is exactly where per-connection settings would get lost.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "blog.db")
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	db.SetMaxIdleConns(0)

	return db
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, "blog.db?_foreign_keys=on", sqliteDSN("blog.db"))
	assert.Equal(t, "blog.db?cache=shared&_foreign_keys=on", sqliteDSN("blog.db?cache=shared"))
}

func TestSQLite_ForeignKeysEnforcedOnEveryConnection(t *testing.T) {
	db := newSQLiteTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO comments (text, author_id, post_id) VALUES ('stray', 999, 999)")
	require.Error(t, err, "a comment referencing a missing post and user must be rejected")
	assert.True(t, db.errorMapper.IsForeignKeyViolation(err))
}

func TestSQLite_DeletePostCascadesComments(t *testing.T) {
	db := newSQLiteTestDB(t)
	ctx := context.Background()
	log := logger.Nop()

	users := NewUserRepository(db, log)
	posts := NewPostRepository(db, log)
	comments := NewCommentRepository(db, log)

	author, err := users.CreateUser(ctx, models.User{
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Name:         "Jane",
	})
	require.NoError(t, err)

	post, err := posts.CreatePost(ctx, models.BlogPost{
		Title:    "First",
		Subtitle: "sub",
		Date:     "August 31, 2026",
		Body:     "text",
		ImgURL:   "https://example.com/img.png",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	_, err = comments.CreateComment(ctx, models.Comment{
		Text:     "nice post",
		AuthorID: author.ID,
		PostID:   post.ID,
	})
	require.NoError(t, err)

	require.NoError(t, posts.DeletePost(ctx, post.ID))

	left, err := comments.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, left, "comments must go with their post")

	// count directly too, in case the join ever hides orphans
	var orphans int
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE post_id = ?", post.ID)
	require.NoError(t, row.Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestSQLite_DuplicateEmailMapsToSentinel(t *testing.T) {
	db := newSQLiteTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db, logger.Nop())

	_, err := users.CreateUser(ctx, models.User{Email: "jane@example.com", PasswordHash: "h", Name: "Jane"})
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, models.User{Email: "jane@example.com", PasswordHash: "h", Name: "Jane Again"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
