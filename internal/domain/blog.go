package domain

import "time"

// Blog is the domain entity for a blog post.
type Blog struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}
