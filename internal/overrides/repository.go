package overrides

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

type repo struct {
	db      *sql.DB
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a human override repository implementing the System interface.
func New(db *sql.DB, prompts prompts.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		prompts: prompts,
		logger:  logger.With("system", "overrides"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*HumanOverride, error) {
	if _, err := r.prompts.Find(ctx, cmd.PromptID); err != nil {
		return nil, err
	}

	tags, err := json.Marshal(NormalizeTags(cmd.Tags))
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	q := `
		INSERT INTO human_overrides (id, prompt_id, human_response, justification, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, prompt_id, human_response, justification, tags, created_at`

	args := []any{
		repository.NewID(),
		cmd.PromptID,
		cmd.HumanResponse,
		cmd.Justification,
		string(tags),
		repository.Now(),
	}

	h, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (HumanOverride, error) {
		return repository.QueryOne(ctx, tx, q, args, scanOverride)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, prompts.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrOverrideExists)
	}

	r.logger.Info("human override recorded", "id", h.ID, "prompt_id", h.PromptID, "tags", len(h.Tags))
	return &h, nil
}

func (r *repo) FindByPrompt(ctx context.Context, promptID uuid.UUID) (*HumanOverride, error) {
	q, args := query.NewBuilder(projection).BuildSingle("PromptID", promptID)

	h, err := repository.QueryOne(ctx, r.db, q, args, scanOverride)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrOverrideExists)
	}
	return &h, nil
}
