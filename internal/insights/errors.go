package insights

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
)

// Domain errors for bias insight operations.
var (
	ErrNotFound  = errors.New("bias insight not found")
	ErrDuplicate = errors.New("bias insight already exists")
	ErrInvalidID = errors.New("bias insight id must be a UUID")
)

// MapHTTPStatus maps insight, owning prompt, and workflow errors to HTTP
// status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, prompts.ErrNotFound) {
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
