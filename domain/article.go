package domain

import (
	"time"
)

// PublishedAtLayout is the canonical rendering of a published timestamp.
const PublishedAtLayout = "2006-01-02 15:04:05"

// Article is the canonical record stored regardless of provider origin.
// URL is the sole deduplication key: re-ingesting the same URL updates the
// existing row in place.
type Article struct {
	CreatedAt   time.Time  `db:"created_at"`
	PublishedAt *time.Time `db:"published_at"`
	AuthorID    *string    `db:"author_id"`
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	URL         string     `db:"url"`
	ImageURL    string     `db:"image_url"`
	SourceID    string     `db:"source_id"`
	CategoryID  string     `db:"category_id"`
}

// FormatPublishedAt renders the published timestamp as UTC
// "YYYY-MM-DD HH:MM:SS", or an empty string when absent.
func (a *Article) FormatPublishedAt() string {
	if a.PublishedAt == nil {
		return ""
	}

	return a.PublishedAt.UTC().Format(PublishedAtLayout)
}

// Author is a resolved byline identity. Name is unique and acts as the key;
// authors are created lazily and never updated after creation.
type Author struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
