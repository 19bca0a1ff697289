package overrides

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/prompts"
)

// Domain errors for override operations.
var (
	ErrNotFound        = errors.New("human override not found")
	ErrOverrideExists  = errors.New("prompt already has a human override")
	ErrInvalidPromptID = errors.New("prompt_id query parameter must be a UUID")
)

// MapHTTPStatus maps override and owning prompt errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, prompts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOverrideExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidPromptID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
