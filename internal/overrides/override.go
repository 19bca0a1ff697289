// Package overrides records a human reviewer's replacement answer for a
// prompt. A prompt carries at most one override.
package overrides

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HumanOverride is a reviewer's answer recorded against a prompt.
type HumanOverride struct {
	ID            uuid.UUID `json:"id"`
	PromptID      uuid.UUID `json:"prompt_id"`
	HumanResponse string    `json:"human_response"`
	Justification *string   `json:"justification"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordCommand carries a reviewer's override for a prompt.
type RecordCommand struct {
	PromptID      uuid.UUID `json:"prompt_id" validate:"required"`
	HumanResponse string    `json:"human_response" validate:"required"`
	Justification *string   `json:"justification"`
	Tags          []string  `json:"tags" validate:"omitempty,dive,max=64"`
}

// NormalizeTags trims each tag, drops blanks, and removes repeats while
// keeping first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
