// File: services/publication/draft.go
package publication

import (
	"context"
	"fmt"
	"strings"

	"praxia/models"
)

// DraftSection asks the text generator for a section body suggestion. The
// result is returned to the caller, never persisted: the author decides
// whether to keep it.
func (s *DefaultPublicationService) DraftSection(ctx context.Context, actorID, pubID string, req models.DraftSectionRequest) (string, error) {
	pub, err := s.authorize(ctx, actorID, pubID)
	if err != nil {
		return "", err
	}
	if s.Generator == nil {
		return "", fmt.Errorf("AI drafting is not configured")
	}

	prompt := buildDraftPrompt(pub, req)
	draft, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to draft section: %w", err)
	}
	return strings.TrimSpace(draft), nil
}

func buildDraftPrompt(pub *models.Publication, req models.DraftSectionRequest) string {
	var sb strings.Builder
	lang := "English"
	if pub.Language == "es" {
		lang = "Spanish"
	}
	fmt.Fprintf(&sb, "You are assisting with a scientific publication titled %q.\n", pub.Title)
	if pub.Abstract != "" {
		fmt.Fprintf(&sb, "Abstract: %s\n", pub.Abstract)
	}
	fmt.Fprintf(&sb, "Write the %q section in %s, in a formal academic register.\n", req.Heading, lang)
	fmt.Fprintf(&sb, "Author guidance: %s\n", req.Prompt)
	return sb.String()
}
