// File: services/board/interface.go
package board

import (
	"context"

	postRepo "praxia/database/repository/post"
	userRepo "praxia/database/repository/user"
	"praxia/models"
)

// BoardService manages the practice's social board of posts.
type BoardService interface {
	CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, limit int64) ([]models.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
}

// DefaultBoardService is the production implementation.
type DefaultBoardService struct {
	Posts postRepo.PostRepository
	Users userRepo.UserRepository
}
