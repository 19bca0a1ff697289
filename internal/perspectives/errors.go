package perspectives

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
)

// Domain errors for perspective operations.
var (
	ErrNotFound        = errors.New("perspective rewrite not found")
	ErrDuplicate       = errors.New("perspective rewrite already exists")
	ErrInvalidID       = errors.New("perspective rewrite id must be a UUID")
	ErrInvalidPromptID = errors.New("prompt_id query parameter must be a UUID")
)

// MapHTTPStatus maps perspective, owning prompt, and workflow errors to
// HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, prompts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidPromptID):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	}
	if status := workflow.MapHTTPStatus(err); status != 0 {
		return status
	}
	return http.StatusInternalServerError
}
