package dto

import "time"

// CreateBlogRequest is the JSON body for POST /posts.
type CreateBlogRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1"`
}

type BlogResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListBlogsResponse struct {
	Items []BlogResponse `json:"items"`
}
