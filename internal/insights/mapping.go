package insights

import (
	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "bias_insights", "b").
	Project("id", "ID").
	Project("prompt_id", "PromptID").
	Project("category", "Category").
	Project("score", "Score").
	Project("insight_summary", "InsightSummary").
	Project("created_at", "CreatedAt")

// insertionOrder relies on time-ordered ids.
var insertionOrder = query.SortField{Field: "ID"}

func scanInsight(s repository.Scanner) (BiasInsight, error) {
	var b BiasInsight
	err := s.Scan(
		&b.ID,
		&b.PromptID,
		&b.Category,
		&b.Score,
		&b.InsightSummary,
		&b.CreatedAt,
	)
	b.CreatedAt = b.CreatedAt.UTC()
	return b, err
}
