package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// Reads join the users table so that rendered pages can show the author's
// display name without a second query.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new blog post and returns it with the
// server-assigned ID.
//
// Error handling:
//   - unique constraint violation on title → [ErrPostTitleExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.Builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: building query")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.ID); err != nil {
		if r.db.errorMapper.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*postRepository.CreatePost").Str("title", post.Title).Msg("title already taken")
			return models.BlogPost{}, ErrPostTitleExists
		}

		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
		return models.BlogPost{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// GetPost retrieves one post together with its author's display name.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPostNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) GetPost(ctx context.Context, id int64) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostByIDQuery(r.db.Builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: building query")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.BlogPost
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body, &post.ImgURL, &post.AuthorID, &post.AuthorName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BlogPost{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: scanning error")
		return models.BlogPost{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPosts retrieves every post (author names included) in id order.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllPostsQuery(r.db.Builder())
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		if err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body, &post.ImgURL, &post.AuthorID, &post.AuthorName); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost overwrites the mutable columns (title, subtitle, body, image
// URL, author) of an existing post.
//
// Error handling:
//   - unique constraint violation on title → [ErrPostTitleExists].
//   - zero affected rows → [ErrPostNotFound].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *postRepository) UpdatePost(ctx context.Context, post models.BlogPost) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.Builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorMapper.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*postRepository.UpdatePost").Str("title", post.Title).Msg("title already taken")
			return ErrPostTitleExists
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post by id. Comments referencing the post are removed
// by the schema-level ON DELETE CASCADE.
//
// Error handling:
//   - zero affected rows → [ErrPostNotFound].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.Builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
