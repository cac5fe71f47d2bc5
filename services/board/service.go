// File: services/board/service.go
package board

import (
	"context"
	"fmt"
	"strings"

	"praxia/models"
)

const (
	maxPostLength    = 2000
	defaultListLimit = 50
)

// CreatePost publishes a board post under the author's display name.
func (s *DefaultBoardService) CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.Post, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, fmt.Errorf("post body must not be empty")
	}
	if len(body) > maxPostLength {
		return nil, fmt.Errorf("post body exceeds %d characters", maxPostLength)
	}

	author, err := s.Users.GetByID(authorID)
	if err != nil || author == nil {
		return nil, fmt.Errorf("author %s not found", authorID)
	}

	post := &models.Post{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       body,
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the newest posts, most recent first.
func (s *DefaultBoardService) ListPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.Posts.GetRecent(ctx, limit)
}

// DeletePost removes a post. Only the author or an admin may delete.
func (s *DefaultBoardService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post %s not found: %w", postID, err)
	}

	actor, err := s.Users.GetByID(actorID)
	if err != nil || actor == nil {
		return fmt.Errorf("actor %s not found", actorID)
	}
	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("only the author or an admin may delete a post")
	}

	return s.Posts.Delete(ctx, postID)
}
