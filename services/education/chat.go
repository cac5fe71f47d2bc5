// File: services/education/chat.go
package education

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"praxia/models"
	"praxia/utils"

	"go.uber.org/zap"
)

const (
	chatPollLimit = 200
	maxChatLength = 1000
)

// PostChatMessage appends one message to the course chat and refreshes the
// Redis window the pollers read from. The cache is an accelerator only; the
// message is durable once the Mongo insert succeeds.
func (s *DefaultEducationService) PostChatMessage(ctx context.Context, actorID, courseID string, req models.PostChatMessageRequest) (*models.ChatMessage, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, fmt.Errorf("message body must not be empty")
	}
	if len(body) > maxChatLength {
		return nil, fmt.Errorf("message body exceeds %d characters", maxChatLength)
	}

	author, err := s.Users.GetByID(actorID)
	if err != nil || author == nil {
		return nil, fmt.Errorf("author %s not found", actorID)
	}
	if _, err := s.Repo.GetCourse(ctx, courseID); err != nil {
		return nil, fmt.Errorf("course %s not found: %w", courseID, err)
	}

	msg := &models.ChatMessage{
		CourseID:   courseID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       body,
		SentAt:     s.now().UTC(),
	}
	if err := s.Repo.AppendChatMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.cacheMessage(ctx, msg)
	return msg, nil
}

// PollChatMessages returns messages newer than the caller's cursor. Clients
// poll this on a short interval; the recent window is served from Redis and
// only cursors older than the window touch Mongo.
func (s *DefaultEducationService) PollChatMessages(ctx context.Context, courseID string, since time.Time) ([]models.ChatMessage, error) {
	if cached, ok := s.cachedMessagesSince(ctx, courseID, since); ok {
		return cached, nil
	}
	return s.Repo.GetChatMessagesSince(ctx, courseID, since, chatPollLimit)
}

func (s *DefaultEducationService) cacheMessage(ctx context.Context, msg *models.ChatMessage) {
	if s.ChatCache == nil {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.ChatCache.Push(ctx, msg.CourseID, data); err != nil {
		utils.GetLogger().Warn("Failed to cache chat message",
			zap.String("courseId", msg.CourseID),
			zap.Error(err),
		)
	}
}

// cachedMessagesSince serves the poll from Redis when the cached window
// demonstrably covers the cursor: the oldest cached entry must be at or
// before it, otherwise older messages could be missing and Mongo is
// authoritative.
func (s *DefaultEducationService) cachedMessagesSince(ctx context.Context, courseID string, since time.Time) ([]models.ChatMessage, bool) {
	if s.ChatCache == nil {
		return nil, false
	}
	raw, err := s.ChatCache.Window(ctx, courseID)
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	window := make([]models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, false
		}
		window = append(window, msg)
	}

	if window[0].SentAt.After(since) {
		// The window only proves completeness when its oldest entry is at
		// or before the cursor. A window that starts later (trimmed, or
		// recreated after expiry) may be missing messages the cursor still
		// needs, so the primary store answers.
		return nil, false
	}

	fresh := make([]models.ChatMessage, 0, len(window))
	for _, msg := range window {
		if msg.SentAt.After(since) {
			fresh = append(fresh, msg)
		}
	}
	return fresh, true
}
