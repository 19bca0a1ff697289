package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/unmask/internal/crossexams"
	"github.com/JaimeStill/unmask/internal/insights"
	"github.com/JaimeStill/unmask/internal/overrides"
	"github.com/JaimeStill/unmask/internal/perspectives"
	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/sessions"
)

// loadLimit bounds concurrent per-prompt loads.
const loadLimit = 4

// Sources are the systems a report reads from.
type Sources struct {
	Sessions     sessions.System
	Prompts      prompts.System
	Insights     insights.System
	CrossExams   crossexams.System
	Perspectives perspectives.System
	Overrides    overrides.System
}

// Assemble builds the report for a session. Prompts keep creation order and
// each prompt's children load concurrently into its own slot, so the same
// stored state always yields the same report.
func (s *Sources) Assemble(ctx context.Context, sessionID uuid.UUID) (*Report, error) {
	sess, err := s.Sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.Prompts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]PromptReport, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadLimit)
	for i := range items {
		g.Go(func() error {
			entry, err := s.loadPrompt(gctx, &items[i])
			if err != nil {
				return fmt.Errorf("prompt %s: %w", items[i].ID, err)
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble report: %w", err)
	}

	return &Report{
		SessionID: sess.ID,
		ModelUsed: sess.ModelUsed,
		Domain:    sess.Domain,
		CreatedAt: sess.CreatedAt,
		Prompts:   entries,
	}, nil
}

func (s *Sources) loadPrompt(ctx context.Context, p *prompts.Prompt) (PromptReport, error) {
	entry := PromptReport{
		ID:           p.ID,
		PromptText:   p.PromptText,
		AIResponse:   p.AIResponse,
		BiasInsights: []InsightEntry{},
		CrossExams:   []ExamEntry{},
		Perspectives: []RewriteEntry{},
	}

	found, err := s.Insights.ListByPrompt(ctx, p.ID)
	if err != nil {
		return entry, err
	}
	for _, b := range found {
		entry.BiasInsights = append(entry.BiasInsights, InsightEntry{
			Category: b.Category,
			Score:    b.Score,
			Summary:  b.InsightSummary,
		})
	}

	turns, err := s.CrossExams.History(ctx, p.ID)
	if err != nil {
		return entry, err
	}
	for _, t := range turns {
		entry.CrossExams = append(entry.CrossExams, ExamEntry{
			UserQuestion: t.UserQuestion,
			AIResponse:   t.AIResponse,
		})
	}

	rewrites, err := s.Perspectives.ListByPrompt(ctx, p.ID)
	if err != nil {
		return entry, err
	}
	for _, rw := range rewrites {
		entry.Perspectives = append(entry.Perspectives, RewriteEntry{
			Perspective:       rw.Perspective,
			AIRephrasedOutput: rw.AIRephrasedOutput,
		})
	}

	o, err := s.Overrides.FindByPrompt(ctx, p.ID)
	switch {
	case errors.Is(err, overrides.ErrNotFound):
	case err != nil:
		return entry, err
	default:
		entry.HumanOverride = &OverrideEntry{
			HumanResponse: o.HumanResponse,
			Justification: o.Justification,
			Tags:          o.Tags,
		}
	}

	return entry, nil
}
