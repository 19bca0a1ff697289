package prompts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

type repo struct {
	db       *sql.DB
	rt       *workflow.Runtime
	sessions sessions.System
	logger   *slog.Logger
}

// New creates a prompt repository implementing the System interface.
func New(
	db *sql.DB,
	rt *workflow.Runtime,
	sessions sessions.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:       db,
		rt:       rt,
		sessions: sessions,
		logger:   logger.With("system", "prompts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Prompt, error) {
	if _, err := r.sessions.Find(ctx, cmd.SessionID); err != nil {
		return nil, err
	}

	answer, err := r.rt.Complete(ctx, cmd.PromptText)
	if err != nil {
		return nil, fmt.Errorf("analyze prompt: %w", err)
	}

	q := `
		INSERT INTO prompts (id, session_id, prompt_text, ai_response, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, session_id, prompt_text, ai_response, created_at`

	args := []any{repository.NewID(), cmd.SessionID, cmd.PromptText, answer, repository.Now()}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Prompt, error) {
		return repository.QueryOne(ctx, tx, q, args, scanPrompt)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, sessions.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prompt analyzed", "id", p.ID, "session_id", p.SessionID)
	return &p, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Prompt, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPrompt)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Prompt, error) {
	if _, err := r.sessions.Find(ctx, sessionID); err != nil {
		return nil, err
	}

	q, args := query.
		NewBuilder(projection, creationOrder...).
		WhereEquals("SessionID", sessionID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanPrompt)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	return items, nil
}
