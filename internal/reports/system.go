package reports

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for report operations.
type System interface {
	Handler() *Handler

	// Assemble builds the current report for a session.
	Assemble(ctx context.Context, sessionID uuid.UUID) (*Report, error)
	// Generate assembles and renders the report. Unknown formats yield
	// ErrUnsupportedFormat.
	Generate(ctx context.Context, sessionID uuid.UUID, format string) (*Document, error)
	// Snapshot stores the assembled report, replacing any earlier one.
	// When archiving is enabled the rendered document is uploaded first.
	Snapshot(ctx context.Context, sessionID uuid.UUID, format string) (*Snapshot, error)
	FindSnapshot(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error)
}
