package models

import "time"

// Post is one entry on the practice's social board.
type Post struct {
	ID         string    `bson:"id" json:"id"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	Body       string    `bson:"body" json:"body"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// CreatePostRequest is the payload for publishing a board post.
type CreatePostRequest struct {
	Body string `json:"body" binding:"required"`
}
