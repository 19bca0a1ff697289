package crossexams

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
)

// Domain errors for cross-examination operations.
var (
	ErrNotFound        = errors.New("cross-exam turn not found")
	ErrDuplicate       = errors.New("cross-exam turn already exists")
	ErrInvalidID       = errors.New("cross-exam turn id must be a UUID")
	ErrInvalidPromptID = errors.New("prompt_id query parameter must be a UUID")
)

// MapHTTPStatus maps cross-examination, owning prompt, and workflow errors
// to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, prompts.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrInvalidPromptID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if status := workflow.MapHTTPStatus(err); status != 0 {
		return status
	}
	return http.StatusInternalServerError
}
