package crossexams

import (
	"github.com/JaimeStill/unmask/internal/collaborator"
	"github.com/JaimeStill/unmask/internal/prompts"
)

// WindowSize is the number of most recent turns carried into a
// cross-examination call. Older turns are dropped, not summarized.
const WindowSize = 5

// BuildContext assembles the collaborator context for a new question: the
// original prompt, its initial answer, the window of prior turns oldest
// first, then the question. window must already be in chronological order.
func BuildContext(p *prompts.Prompt, window []CrossExamTurn, question string) collaborator.Context {
	c := collaborator.Context{
		PromptText: p.PromptText,
		Turns:      make([]collaborator.Turn, 0, len(window)),
		Question:   question,
	}
	if p.AIResponse != nil {
		c.InitialResponse = *p.AIResponse
	}

	for _, t := range window {
		c.Turns = append(c.Turns, collaborator.Turn{
			Question: t.UserQuestion,
			Answer:   t.AIResponse,
		})
	}
	return c
}
