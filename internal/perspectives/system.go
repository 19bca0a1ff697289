package perspectives

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for perspective operations.
type System interface {
	Handler() *Handler

	// Reframe asks the collaborator to restate the prompt's original text
	// from cmd.Perspective and stores the result.
	Reframe(ctx context.Context, cmd ReframeCommand) (*PerspectiveRewrite, error)
	Find(ctx context.Context, id uuid.UUID) (*PerspectiveRewrite, error)
	// ListByPrompt returns a prompt's rewrites in insertion order.
	ListByPrompt(ctx context.Context, promptID uuid.UUID) ([]PerspectiveRewrite, error)
}
