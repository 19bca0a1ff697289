package insights

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

const insertQuery = `
	INSERT INTO bias_insights (id, prompt_id, category, score, insight_summary, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, prompt_id, category, score, insight_summary, created_at`

type repo struct {
	db      *sql.DB
	rt      *workflow.Runtime
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a bias insight repository implementing the System interface.
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
		logger:  logger.With("system", "insights"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Detect(ctx context.Context, cmd DetectCommand) ([]BiasInsight, error) {
	if _, err := r.prompts.Find(ctx, cmd.PromptID); err != nil {
		return nil, err
	}

	items, err := r.rt.ScoreBias(ctx, cmd.AIResponse)
	if err != nil {
		return nil, fmt.Errorf("detect bias: %w", err)
	}

	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("detect bias: %w", err)
	}

	now := repository.Now()
	stored, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]BiasInsight, error) {
		out := make([]BiasInsight, 0, len(items))
		for _, item := range items {
			args := []any{
				repository.NewID(),
				cmd.PromptID,
				strings.TrimSpace(item.Category),
				item.Score,
				item.Summary,
				now,
			}
			b, err := repository.QueryOne(ctx, tx, insertQuery, args, scanInsight)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		return out, nil
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, prompts.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("bias insights stored", "prompt_id", cmd.PromptID, "count", len(stored))
	return stored, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*BiasInsight, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanInsight)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) ListByPrompt(ctx context.Context, promptID uuid.UUID) ([]BiasInsight, error) {
	q, args := query.
		NewBuilder(projection, insertionOrder).
		WhereEquals("PromptID", promptID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanInsight)
	if err != nil {
		return nil, fmt.Errorf("query bias insights: %w", err)
	}
	return items, nil
}
