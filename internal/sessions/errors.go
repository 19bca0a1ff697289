package sessions

import (
	"errors"
	"net/http"
)

// Domain errors for session operations.
var (
	ErrNotFound  = errors.New("session not found")
	ErrDuplicate = errors.New("session already exists")
	ErrInvalidID = errors.New("session id must be a UUID")
)

// MapHTTPStatus maps session domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
