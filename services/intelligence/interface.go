// File: services/intelligence/interface.go
package intelligence

import "context"

// TextGenerator produces text from a prompt. The production implementation
// is the Gemini client; tests substitute a canned generator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
