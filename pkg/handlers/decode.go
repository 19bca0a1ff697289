package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidPayload wraps struct validation failures on request bodies.
var ErrInvalidPayload = errors.New("invalid payload")

// Decode reads a JSON body into v and validates its struct tags. On failure
// it writes the error response and returns false: 400 for malformed JSON or
// an oversized body, 422 for validation failures.
func Decode(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		RespondError(w, logger, status, fmt.Errorf("invalid request body: %w", err))
		return false
	}

	if err := validate.Struct(v); err != nil {
		RespondError(w, logger, http.StatusUnprocessableEntity, fmt.Errorf("%w: %s", ErrInvalidPayload, describe(err)))
		return false
	}

	return true
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
