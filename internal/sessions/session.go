// Package sessions implements the session domain: the root of every audit
// graph. Deleting a session removes its prompts and everything recorded
// against them.
package sessions

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the prompts of one audit conversation.
type Session struct {
	ID        uuid.UUID `json:"id"`
	ModelUsed *string   `json:"model_used"`
	Domain    *string   `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the optional labels recorded on a new session.
type CreateCommand struct {
	ModelUsed *string `json:"model_used"`
	Domain    *string `json:"domain"`
}
