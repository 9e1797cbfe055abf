package model

import "time"

// News represents a news post.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Body      *string   `json:"body,omitempty"`
	Cover     *string   `json:"cover,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsImage is one gallery image of a post.
type NewsImage struct {
	ID        int64  `json:"id"`
	NewsID    int64  `json:"news_id"`
	Path      string `json:"path"`
	SortOrder int    `json:"sort_order"`
}

// Slide is an entry of the post gallery: the cover first, then the images.
type Slide struct {
	Path string `json:"path"`
}
