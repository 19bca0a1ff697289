package overrides

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for human override operations.
type System interface {
	Handler() *Handler

	// Record stores an override with normalized tags. A prompt that
	// already has one yields ErrOverrideExists.
	Record(ctx context.Context, cmd RecordCommand) (*HumanOverride, error)
	// FindByPrompt returns the prompt's override or ErrNotFound.
	FindByPrompt(ctx context.Context, promptID uuid.UUID) (*HumanOverride, error)
}
