package perspectives

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

type repo struct {
	db      *sql.DB
	rt      *workflow.Runtime
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a perspective repository implementing the System interface.
func New(
	db *sql.DB,
	rt *workflow.Runtime,
	prompts prompts.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:      db,
		rt:      rt,
		prompts: prompts,
		logger:  logger.With("system", "perspectives"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Reframe(ctx context.Context, cmd ReframeCommand) (*PerspectiveRewrite, error) {
	p, err := r.prompts.Find(ctx, cmd.PromptID)
	if err != nil {
		return nil, err
	}

	output, err := r.rt.Rewrite(ctx, p.PromptText, cmd.Perspective)
	if err != nil {
		return nil, fmt.Errorf("reframe: %w", err)
	}

	q := `
		INSERT INTO perspectives (id, prompt_id, perspective, ai_rephrased_output, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, prompt_id, perspective, ai_rephrased_output, created_at`

	args := []any{repository.NewID(), cmd.PromptID, cmd.Perspective, output, repository.Now()}

	rw, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (PerspectiveRewrite, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRewrite)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, prompts.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("perspective stored",
		"id", rw.ID,
		"prompt_id", rw.PromptID,
		"perspective", rw.Perspective,
	)
	return &rw, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*PerspectiveRewrite, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rw, err := repository.QueryOne(ctx, r.db, q, args, scanRewrite)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rw, nil
}

func (r *repo) ListByPrompt(ctx context.Context, promptID uuid.UUID) ([]PerspectiveRewrite, error) {
	q, args := query.
		NewBuilder(projection, insertionOrder).
		WhereEquals("PromptID", promptID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanRewrite)
	if err != nil {
		return nil, fmt.Errorf("query perspectives: %w", err)
	}
	return items, nil
}
