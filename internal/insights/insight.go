// Package insights implements bias detection: the collaborator scores a
// response by category and each validated score is stored against the
// prompt.
package insights

import (
	"time"

	"github.com/google/uuid"
)

// BiasInsight is one scored bias category for a prompt's response.
type BiasInsight struct {
	ID             uuid.UUID `json:"id"`
	PromptID       uuid.UUID `json:"prompt_id"`
	Category       string    `json:"category"`
	Score          float64   `json:"score"`
	InsightSummary *string   `json:"insight_summary"`
	CreatedAt      time.Time `json:"created_at"`
}

// DetectCommand asks for a bias assessment of text recorded against a
// prompt. The text need not match the prompt's stored response.
type DetectCommand struct {
	PromptID   uuid.UUID `json:"prompt_id" validate:"required"`
	AIResponse string    `json:"ai_response" validate:"required"`
}
