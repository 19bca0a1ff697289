package perspectives

import (
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "perspectives", "v").
	Project("id", "ID").
	Project("prompt_id", "PromptID").
	Project("perspective", "Perspective").
	Project("ai_rephrased_output", "AIRephrasedOutput").
	Project("created_at", "CreatedAt")

var insertionOrder = query.SortField{Field: "ID"}

func scanRewrite(s repository.Scanner) (PerspectiveRewrite, error) {
	var p PerspectiveRewrite
	err := s.Scan(
		&p.ID,
		&p.PromptID,
		&p.Perspective,
		&p.AIRephrasedOutput,
		&p.CreatedAt,
	)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, err
}
