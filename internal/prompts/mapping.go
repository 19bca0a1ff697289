package prompts

import (
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "prompts", "p").
	Project("id", "ID").
	Project("session_id", "SessionID").
	Project("prompt_text", "PromptText").
	Project("ai_response", "AIResponse").
	Project("created_at", "CreatedAt")

// creationOrder lists prompts oldest first; ids break timestamp ties.
var creationOrder = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

func scanPrompt(s repository.Scanner) (Prompt, error) {
	var p Prompt
	err := s.Scan(
		&p.ID,
		&p.SessionID,
		&p.PromptText,
		&p.AIResponse,
		&p.CreatedAt,
	)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, err
}
