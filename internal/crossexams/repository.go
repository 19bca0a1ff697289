package crossexams

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

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

// New creates a cross-examination repository implementing the System interface.
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
		logger:  logger.With("system", "crossexams"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Examine(ctx context.Context, cmd ExamineCommand) (*CrossExamTurn, error) {
	p, err := r.prompts.Find(ctx, cmd.PromptID)
	if err != nil {
		return nil, err
	}

	window, err := r.Window(ctx, cmd.PromptID)
	if err != nil {
		return nil, err
	}

	answer, err := r.rt.CrossExamine(ctx, BuildContext(p, window, cmd.UserQuestion))
	if err != nil {
		return nil, fmt.Errorf("cross-examine: %w", err)
	}

	q := `
		INSERT INTO cross_exams (id, prompt_id, user_question, ai_response, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, prompt_id, user_question, ai_response, created_at`

	args := []any{repository.NewID(), cmd.PromptID, cmd.UserQuestion, answer, repository.Now()}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (CrossExamTurn, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTurn)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, prompts.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("cross-exam turn stored",
		"id", t.ID,
		"prompt_id", t.PromptID,
		"window", len(window),
	)
	return &t, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*CrossExamTurn, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTurn)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) History(ctx context.Context, promptID uuid.UUID) ([]CrossExamTurn, error) {
	q, args := query.
		NewBuilder(projection, chronological...).
		WhereEquals("PromptID", promptID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanTurn)
	if err != nil {
		return nil, fmt.Errorf("query cross-exam history: %w", err)
	}
	return items, nil
}

func (r *repo) Window(ctx context.Context, promptID uuid.UUID) ([]CrossExamTurn, error) {
	q, args := query.
		NewBuilder(projection, mostRecent...).
		WhereEquals("PromptID", promptID).
		BuildPage(1, WindowSize)

	items, err := repository.QueryMany(ctx, r.db, q, args, scanTurn)
	if err != nil {
		return nil, fmt.Errorf("query cross-exam window: %w", err)
	}

	slices.Reverse(items)
	return items, nil
}
