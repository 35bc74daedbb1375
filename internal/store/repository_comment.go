package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(r.db.Builder(), comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&comment.ID, &comment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: scanning error")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// ListCommentsByPost retrieves every comment of the given post, oldest
// first, with author display names joined in.
func (r *commentRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsByPostQuery(r.db.Builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.AuthorID, &comment.PostID, &comment.CreatedAt, &comment.AuthorName); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByPost").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
