// Package prompts implements the prompt domain. Analyzing a prompt sends it
// to the collaborator and stores the answer; every later audit step hangs
// off the stored prompt.
package prompts

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a user prompt and the collaborator's initial answer.
type Prompt struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	PromptText string    `json:"prompt_text"`
	AIResponse *string   `json:"ai_response"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnalyzeCommand submits prompt text within a session.
type AnalyzeCommand struct {
	SessionID  uuid.UUID `json:"session_id" validate:"required"`
	PromptText string    `json:"prompt_text" validate:"required"`
}
