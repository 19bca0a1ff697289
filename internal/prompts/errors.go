package prompts

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/internal/workflow"
)

// Domain errors for prompt operations.
var (
	ErrNotFound  = errors.New("prompt not found")
	ErrDuplicate = errors.New("prompt already exists")
	ErrInvalidID = errors.New("prompt id must be a UUID")
)

// MapHTTPStatus maps prompt, owning session, and workflow errors to HTTP
// status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, sessions.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) {
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
