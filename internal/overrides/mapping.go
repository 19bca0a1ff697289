package overrides

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "human_overrides", "h").
	Project("id", "ID").
	Project("prompt_id", "PromptID").
	Project("human_response", "HumanResponse").
	Project("justification", "Justification").
	Project("tags", "Tags").
	Project("created_at", "CreatedAt")

// Tags are stored as a JSON array: JSONB on PostgreSQL, a BLOB on SQLite.
func scanOverride(s repository.Scanner) (HumanOverride, error) {
	var (
		h    HumanOverride
		tags []byte
	)
	err := s.Scan(
		&h.ID,
		&h.PromptID,
		&h.HumanResponse,
		&h.Justification,
		&tags,
		&h.CreatedAt,
	)
	if err != nil {
		return h, err
	}
	h.CreatedAt = h.CreatedAt.UTC()

	h.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &h.Tags); err != nil {
			return h, fmt.Errorf("decode tags: %w", err)
		}
	}
	return h, nil
}
