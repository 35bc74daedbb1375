package models

// BlogPost represents a single published article.
//
// Date is kept as a pre-formatted display string (e.g. "September 1, 2026")
// rather than a timestamp: it is stamped once at creation time and rendered
// verbatim.
type BlogPost struct {
	// ID is the internal unique identifier of the post.
	ID int64

	// Title is the unique headline of the post.
	Title string

	// Subtitle is the short tagline rendered under the title.
	Subtitle string

	// Date is the human-readable publication date.
	Date string

	// Body is the rich-text content of the post.
	Body string

	// ImgURL points at the header image shown on the index and post pages.
	ImgURL string

	// AuthorID references the user recorded as the author.
	// Overwritten with the editor's ID on every edit.
	AuthorID int64

	// AuthorName is the display name of the author, populated on reads
	// that join the users table. Not a column of blog_posts.
	AuthorName string
}

// TableName returns the name of the database table
// associated with the BlogPost model.
func (p BlogPost) TableName() string {
	return "blog_posts"
}
