// Package workflow runs the collaborator steps of the audit workflow. Each
// step is traced, timed, logged, and has its failures normalized to
// ErrUpstream so domain packages handle one error kind per outcome.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JaimeStill/unmask/internal/collaborator"
)

// Step names used for spans, metrics, and logs.
const (
	StepComplete     = "complete"
	StepScoreBias    = "score_bias"
	StepRewrite      = "rewrite"
	StepCrossExamine = "cross_examine"
)

// Runtime bundles the collaborator with the observability it is invoked under.
type Runtime struct {
	collaborator collaborator.Collaborator
	tracer       trace.Tracer
	logger       *slog.Logger
}

// NewRuntime creates a Runtime.
func NewRuntime(c collaborator.Collaborator, tracer trace.Tracer, logger *slog.Logger) *Runtime {
	return &Runtime{
		collaborator: c,
		tracer:       tracer,
		logger:       logger.With("system", "workflow"),
	}
}

// Complete asks the collaborator to answer prompt.
func (r *Runtime) Complete(ctx context.Context, prompt string) (string, error) {
	return invoke(ctx, r, StepComplete, func(ctx context.Context) (string, error) {
		return r.collaborator.Complete(ctx, prompt)
	})
}

// ScoreBias asks the collaborator to score text. Items are returned unvalidated.
func (r *Runtime) ScoreBias(ctx context.Context, text string) ([]collaborator.BiasItem, error) {
	return invoke(ctx, r, StepScoreBias, func(ctx context.Context) ([]collaborator.BiasItem, error) {
		return r.collaborator.ScoreBias(ctx, text)
	})
}

// Rewrite asks the collaborator to rephrase text from perspective.
func (r *Runtime) Rewrite(ctx context.Context, text, perspective string) (string, error) {
	return invoke(ctx, r, StepRewrite, func(ctx context.Context) (string, error) {
		return r.collaborator.Rewrite(ctx, text, perspective)
	}, attribute.String("perspective", perspective))
}

// CrossExamine asks the collaborator to answer a follow-up question in context.
func (r *Runtime) CrossExamine(ctx context.Context, c collaborator.Context) (string, error) {
	return invoke(ctx, r, StepCrossExamine, func(ctx context.Context) (string, error) {
		return r.collaborator.CrossExamine(ctx, c)
	}, attribute.Int("window_turns", len(c.Turns)))
}

func invoke[T any](
	ctx context.Context,
	r *Runtime,
	step string,
	fn func(context.Context) (T, error),
	attrs ...attribute.KeyValue,
) (T, error) {
	ctx, span := r.tracer.Start(ctx, "collaborator."+step, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	result, err := fn(ctx)
	elapsed := time.Since(start)

	callDuration.WithLabelValues(step).Observe(elapsed.Seconds())

	if err != nil {
		callsTotal.WithLabelValues(step, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "collaborator call failed", "step", step, "duration", elapsed, "error", err)

		var zero T
		return zero, fmt.Errorf("%w: %s: %w", ErrUpstream, step, err)
	}

	callsTotal.WithLabelValues(step, "ok").Inc()
	r.logger.InfoContext(ctx, "collaborator call complete", "step", step, "duration", elapsed)
	return result, nil
}
