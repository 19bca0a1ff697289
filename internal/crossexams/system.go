package crossexams

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for cross-examination operations.
type System interface {
	Handler() *Handler

	// Examine answers a follow-up question using the prompt, its answer,
	// and the last WindowSize turns, then appends the new turn. The window
	// is read before the collaborator call, so concurrent questions on one
	// prompt may share a window; both turns are still appended.
	Examine(ctx context.Context, cmd ExamineCommand) (*CrossExamTurn, error)
	Find(ctx context.Context, id uuid.UUID) (*CrossExamTurn, error)
	// History returns every turn of a prompt in chronological order.
	History(ctx context.Context, promptID uuid.UUID) ([]CrossExamTurn, error)
	// Window returns the most recent WindowSize turns of a prompt in
	// chronological order.
	Window(ctx context.Context, promptID uuid.UUID) ([]CrossExamTurn, error)
}
