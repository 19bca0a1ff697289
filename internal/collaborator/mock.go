package collaborator

import (
	"context"
	"fmt"
)

// mock answers deterministically without network access. It backs local
// development and demos when no provider is configured.
type mock struct{}

func (mock) Complete(_ context.Context, prompt string) (string, error) {
	return "Mock response to: " + prompt, nil
}

func (mock) ScoreBias(_ context.Context, text string) ([]BiasItem, error) {
	summary := fmt.Sprintf("No strong bias detected in %d characters of text.", len(text))
	return []BiasItem{{Category: "Neutral", Score: 0.1, Summary: &summary}}, nil
}

func (mock) Rewrite(_ context.Context, text, perspective string) (string, error) {
	return fmt.Sprintf("[%s] %s", perspective, text), nil
}

func (mock) CrossExamine(_ context.Context, c Context) (string, error) {
	return fmt.Sprintf("Mock answer to %q after %d prior turns.", c.Question, len(c.Turns)), nil
}
