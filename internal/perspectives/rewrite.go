// Package perspectives implements perspective reframing: the collaborator
// restates a prompt from a named cultural or ideological point of view.
package perspectives

import (
	"time"

	"github.com/google/uuid"
)

// PerspectiveRewrite is one reframed rendering of a prompt. A prompt may
// hold many, including repeats of the same perspective.
type PerspectiveRewrite struct {
	ID                uuid.UUID `json:"id"`
	PromptID          uuid.UUID `json:"prompt_id"`
	Perspective       string    `json:"perspective"`
	AIRephrasedOutput string    `json:"ai_rephrased_output"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReframeCommand requests a rewrite of a prompt from a perspective label
// such as "Conservative".
type ReframeCommand struct {
	PromptID    uuid.UUID `json:"prompt_id" validate:"required"`
	Perspective string    `json:"perspective" validate:"required,max=128"`
}
