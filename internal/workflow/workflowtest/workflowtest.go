// Package workflowtest provides a scripted collaborator and runtime for
// domain tests.
package workflowtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/JaimeStill/unmask/internal/collaborator"
	"github.com/JaimeStill/unmask/internal/workflow"
)

// Collaborator answers with the configured functions. Nil functions fall
// back to fixed answers. Cross-examination contexts are recorded.
type Collaborator struct {
	CompleteFn     func(ctx context.Context, prompt string) (string, error)
	ScoreBiasFn    func(ctx context.Context, text string) ([]collaborator.BiasItem, error)
	RewriteFn      func(ctx context.Context, text, perspective string) (string, error)
	CrossExamineFn func(ctx context.Context, c collaborator.Context) (string, error)

	mu       sync.Mutex
	contexts []collaborator.Context
}

func (c *Collaborator) Complete(ctx context.Context, prompt string) (string, error) {
	if c.CompleteFn != nil {
		return c.CompleteFn(ctx, prompt)
	}
	return "answer: " + prompt, nil
}

func (c *Collaborator) ScoreBias(ctx context.Context, text string) ([]collaborator.BiasItem, error) {
	if c.ScoreBiasFn != nil {
		return c.ScoreBiasFn(ctx, text)
	}
	return []collaborator.BiasItem{{Category: "Political", Score: 0.6}}, nil
}

func (c *Collaborator) Rewrite(ctx context.Context, text, perspective string) (string, error) {
	if c.RewriteFn != nil {
		return c.RewriteFn(ctx, text, perspective)
	}
	return fmt.Sprintf("%s view: %s", perspective, text), nil
}

func (c *Collaborator) CrossExamine(ctx context.Context, cc collaborator.Context) (string, error) {
	c.mu.Lock()
	c.contexts = append(c.contexts, cc)
	c.mu.Unlock()

	if c.CrossExamineFn != nil {
		return c.CrossExamineFn(ctx, cc)
	}
	return "because " + cc.Question, nil
}

// Contexts returns the cross-examination contexts received so far.
func (c *Collaborator) Contexts() []collaborator.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]collaborator.Context(nil), c.contexts...)
}

// Logger discards output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRuntime wraps c in a runtime with a no-op tracer.
func NewRuntime(c collaborator.Collaborator) *workflow.Runtime {
	return workflow.NewRuntime(c, noop.NewTracerProvider().Tracer("test"), Logger())
}
