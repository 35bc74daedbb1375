package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// postDateLayout is the display format stamped onto new posts,
// e.g. "September 1, 2026".
const postDateLayout = "January 2, 2006"

// blogService is the concrete implementation of BlogService. It applies the
// little domain logic the blog has (field validation, date stamping,
// authorship recording) and delegates persistence to the repositories.
type blogService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository

	// now is the clock used for date stamping; overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given repositories.
func NewBlogService(postRepository store.PostRepository, commentRepository store.CommentRepository, logger *logger.Logger) BlogService {
	return &blogService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// ListPosts returns every post for the index page.
func (b *blogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := b.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// GetPost returns one post by id.
func (b *blogService) GetPost(ctx context.Context, id int64) (models.BlogPost, error) {
	post, err := b.postRepository.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.BlogPost{}, err
		}
		return models.BlogPost{}, fmt.Errorf("fetching post failed: %w", err)
	}

	return post, nil
}

// CreatePost publishes a new post authored by authorID.
//
// The publication date is stamped as a display string at creation time and
// never changes afterwards, even on edit.
func (b *blogService) CreatePost(ctx context.Context, post models.BlogPost, authorID int64) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	if post.Title == "" || post.Subtitle == "" || post.Body == "" || post.ImgURL == "" {
		log.Error().Str("title", post.Title).Msg("invalid post data provided")
		return models.BlogPost{}, ErrInvalidDataProvided
	}

	post.AuthorID = authorID
	post.Date = b.now().Format(postDateLayout)

	created, err := b.postRepository.CreatePost(ctx, post)
	if err != nil {
		if errors.Is(err, store.ErrPostTitleExists) {
			return models.BlogPost{}, err
		}

		log.Err(err).Str("title", post.Title).Msg("post creation ended with error")
		return models.BlogPost{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// UpdatePost overwrites the content of an existing post.
//
// The recorded author is replaced with editorID, mirroring the behavior the
// application has always had: whoever edits the post becomes its author of
// record.
func (b *blogService) UpdatePost(ctx context.Context, post models.BlogPost, editorID int64) error {
	log := logger.FromContext(ctx)

	if post.ID == 0 || post.Title == "" || post.Subtitle == "" || post.Body == "" || post.ImgURL == "" {
		log.Error().Int64("id", post.ID).Msg("invalid post data provided")
		return ErrInvalidDataProvided
	}

	post.AuthorID = editorID

	if err := b.postRepository.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, store.ErrPostTitleExists) {
			return err
		}

		log.Err(err).Int64("id", post.ID).Msg("post update ended with error")
		return fmt.Errorf("post update ended with error: %w", err)
	}

	return nil
}

// DeletePost removes a post; its comments go with it at the schema level.
func (b *blogService) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := b.postRepository.DeletePost(ctx, id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return err
		}

		log.Err(err).Int64("id", id).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

// AddComment attaches a comment by authorID to the given post.
//
// The parent post is fetched first so commenting on a deleted post surfaces
// [store.ErrPostNotFound] instead of a bare foreign-key failure.
func (b *blogService) AddComment(ctx context.Context, postID, authorID int64, text string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if text == "" || authorID == 0 {
		log.Error().Int64("post_id", postID).Msg("invalid comment data provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	post, err := b.postRepository.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Comment{}, err
		}
		return models.Comment{}, fmt.Errorf("fetching post failed: %w", err)
	}

	comment, err := b.commentRepository.CreateComment(ctx, models.Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   post.ID,
	})
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

// ListComments returns all comments of a post, oldest first.
func (b *blogService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := b.commentRepository.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}
