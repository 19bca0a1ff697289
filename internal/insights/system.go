package insights

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for bias insight operations.
type System interface {
	Handler() *Handler

	// Detect scores cmd.AIResponse and stores the validated batch in one
	// transaction. Invalid or empty output stores nothing.
	Detect(ctx context.Context, cmd DetectCommand) ([]BiasInsight, error)
	Find(ctx context.Context, id uuid.UUID) (*BiasInsight, error)
	// ListByPrompt returns a prompt's insights in insertion order.
	ListByPrompt(ctx context.Context, promptID uuid.UUID) ([]BiasInsight, error)
}
