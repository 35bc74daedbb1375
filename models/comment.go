package models

import "time"

// Comment represents a reader comment attached to a blog post.
// Comments are created by authenticated users and are never edited
// or deleted afterwards.
type Comment struct {
	// ID is the internal unique identifier of the comment.
	ID int64

	// Text is the comment body.
	Text string

	// AuthorID references the user who wrote the comment.
	AuthorID int64

	// PostID references the parent blog post.
	PostID int64

	// CreatedAt is the timestamp when the comment was written.
	CreatedAt time.Time

	// AuthorName is the display name of the comment author, populated on
	// reads that join the users table. Not a column of comments.
	AuthorName string
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
