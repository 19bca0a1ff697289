package crossexams

import (
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "cross_exams", "x").
	Project("id", "ID").
	Project("prompt_id", "PromptID").
	Project("user_question", "UserQuestion").
	Project("ai_response", "AIResponse").
	Project("created_at", "CreatedAt")

var (
	chronological = []query.SortField{
		{Field: "CreatedAt"},
		{Field: "ID"},
	}
	mostRecent = []query.SortField{
		{Field: "CreatedAt", Descending: true},
		{Field: "ID", Descending: true},
	}
)

func scanTurn(s repository.Scanner) (CrossExamTurn, error) {
	var t CrossExamTurn
	err := s.Scan(
		&t.ID,
		&t.PromptID,
		&t.UserQuestion,
		&t.AIResponse,
		&t.CreatedAt,
	)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, err
}
