package reports

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
	"github.com/JaimeStill/unmask/pkg/storage"
)

const upsertQuery = `
	INSERT INTO bias_reports (session_id, report, archive_key, generated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (session_id) DO UPDATE SET
		report = excluded.report,
		archive_key = excluded.archive_key,
		generated_at = excluded.generated_at
	RETURNING session_id, report, archive_key, generated_at`

type repo struct {
	db      *sql.DB
	src     *Sources
	archive storage.System
	logger  *slog.Logger
}

// New creates a report repository implementing the System interface.
// archive may be nil, which disables document archiving.
func New(db *sql.DB, src *Sources, archive storage.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		src:     src,
		archive: archive,
		logger:  logger.With("system", "reports"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Assemble(ctx context.Context, sessionID uuid.UUID) (*Report, error) {
	return r.src.Assemble(ctx, sessionID)
}

func (r *repo) Generate(ctx context.Context, sessionID uuid.UUID, format string) (*Document, error) {
	rpt, err := r.src.Assemble(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	doc, err := Render(rpt, format)
	if err != nil {
		return nil, err
	}

	r.logger.Info("report generated",
		"session_id", sessionID,
		"prompts", len(rpt.Prompts),
		"content_type", doc.ContentType,
		"bytes", len(doc.Data),
	)
	return doc, nil
}

func (r *repo) Snapshot(ctx context.Context, sessionID uuid.UUID, format string) (*Snapshot, error) {
	if format == "" {
		format = FormatPDF
	}
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	rpt, err := r.src.Assemble(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(rpt)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	now := repository.Now()
	key, err := r.archiveReport(ctx, rpt, format, now.Unix())
	if err != nil {
		return nil, err
	}

	args := []any{sessionID, string(raw), key, now}
	snap, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Snapshot, error) {
		return repository.QueryOne(ctx, tx, upsertQuery, args, scanSnapshot)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, sessions.ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("report snapshot stored", "session_id", sessionID, "archived", key != nil)
	return &snap, nil
}

func (r *repo) FindSnapshot(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error) {
	q, args := query.NewBuilder(projection).BuildSingle("SessionID", sessionID)

	snap, err := repository.QueryOne(ctx, r.db, q, args, scanSnapshot)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &snap, nil
}

// archiveReport renders rpt and uploads it when storage is configured,
// returning the blob key. Without storage nothing is rendered.
func (r *repo) archiveReport(ctx context.Context, rpt *Report, format string, stamp int64) (*string, error) {
	if r.archive == nil {
		return nil, nil
	}

	doc, err := Render(rpt, format)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%s/%d-%s", rpt.SessionID, stamp, doc.Filename)
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}

	if err := r.archive.Upload(ctx, key, bytes.NewReader(doc.Data), doc.ContentType); err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}
	return &key, nil
}
