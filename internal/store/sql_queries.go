package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

// Query builders shared by the repositories. Every query goes through
// squirrel so that the placeholder format follows the connection's dialect
// ($1 for PostgreSQL, ? for SQLite).

const (
	userColumns = "id, email, password_hash, name, created_at"
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, user.Name).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.BlogPost) (string, []any, error) {
	return b.Insert(models.BlogPost{}.TableName()).
		Columns("title", "subtitle", "date", "body", "img_url", "author_id").
		Values(post.Title, post.Subtitle, post.Date, post.Body, post.ImgURL, post.AuthorID).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectPostsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(
		"p.id", "p.title", "p.subtitle", "p.date", "p.body", "p.img_url",
		"p.author_id", "u.name",
	).
		From(models.BlogPost{}.TableName() + " p").
		Join(models.User{}.TableName() + " u ON u.id = p.author_id")
}

func buildSelectPostByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return buildSelectPostsQuery(b).
		Where(sq.Eq{"p.id": id}).
		ToSql()
}

func buildSelectAllPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return buildSelectPostsQuery(b).
		OrderBy("p.id").
		ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.BlogPost) (string, []any, error) {
	return b.Update(models.BlogPost{}.TableName()).
		Set("title", post.Title).
		Set("subtitle", post.Subtitle).
		Set("body", post.Body).
		Set("img_url", post.ImgURL).
		Set("author_id", post.AuthorID).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.BlogPost{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(models.Comment{}.TableName()).
		Columns("text", "author_id", "post_id").
		Values(comment.Text, comment.AuthorID, comment.PostID).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectCommentsByPostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Select(
		"c.id", "c.text", "c.author_id", "c.post_id", "c.created_at", "u.name",
	).
		From(models.Comment{}.TableName() + " c").
		Join(models.User{}.TableName() + " u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id").
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(models.Session{}.TableName()).
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("id", "user_id", "created_at", "expires_at", "revoked_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildRevokeSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Update(models.Session{}.TableName()).
		Set("revoked_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildRevokeUserSessionsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Update(models.Session{}.TableName()).
		Set("revoked_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
}
