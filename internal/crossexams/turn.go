// Package crossexams implements cross-examination: follow-up questions put
// to the collaborator about a prompt's answer, each answered with a bounded
// window of the preceding exchanges as context.
package crossexams

import (
	"time"

	"github.com/google/uuid"
)

// CrossExamTurn is one question and answer in a prompt's cross-examination
// thread. Turns are append-only.
type CrossExamTurn struct {
	ID           uuid.UUID `json:"id"`
	PromptID     uuid.UUID `json:"prompt_id"`
	UserQuestion string    `json:"user_question"`
	AIResponse   string    `json:"ai_response"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExamineCommand asks a follow-up question about a prompt.
type ExamineCommand struct {
	PromptID     uuid.UUID `json:"prompt_id" validate:"required"`
	UserQuestion string    `json:"user_question" validate:"required"`
}
