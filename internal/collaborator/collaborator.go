// Package collaborator wraps the external language model that answers
// prompts, scores bias, rewrites answers, and handles cross-examination.
// Every call is synchronous and single-attempt.
package collaborator

import (
	"context"
	"errors"
)

// ErrEmptyCompletion indicates the model returned no choices or no content.
var ErrEmptyCompletion = errors.New("collaborator returned no content")

// ErrReported indicates the model reported an error inside a structured
// response instead of returning results.
var ErrReported = errors.New("collaborator reported an error")

// BiasItem is one scored bias category as returned by the model. Items are
// unvalidated; scores may fall outside [0, 1].
type BiasItem struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Summary  *string `json:"summary,omitempty"`
}

// Turn is one prior cross-examination exchange.
type Turn struct {
	Question string
	Answer   string
}

// Context is the conversational context for a cross-examination call, in
// the order it is presented to the model.
type Context struct {
	PromptText      string
	InitialResponse string
	Turns           []Turn
	Question        string
}

// Collaborator is the external model.
type Collaborator interface {
	// Complete returns the model's answer to a user prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// ScoreBias scores text for bias by category.
	ScoreBias(ctx context.Context, text string) ([]BiasItem, error)
	// Rewrite rephrases text from the given perspective.
	Rewrite(ctx context.Context, text, perspective string) (string, error)
	// CrossExamine answers a follow-up question in context.
	CrossExamine(ctx context.Context, c Context) (string, error)
}
