package prompts

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	// Analyze sends the prompt to the collaborator and stores it with the
	// answer. Nothing is stored when the collaborator fails.
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Prompt, error)
	Find(ctx context.Context, id uuid.UUID) (*Prompt, error)
	// ListBySession returns the session's prompts in creation order.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Prompt, error)
}
