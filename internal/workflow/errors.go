package workflow

import (
	"errors"
	"net/http"
)

var (
	// ErrUpstream indicates the collaborator call failed. Nothing is persisted.
	ErrUpstream = errors.New("collaborator call failed")
	// ErrEmptyResult indicates the collaborator returned no usable results.
	ErrEmptyResult = errors.New("collaborator returned an empty result")
	// ErrSchemaViolation indicates collaborator output or a caller payload
	// violates the data model.
	ErrSchemaViolation = errors.New("schema violation")
)

// MapHTTPStatus maps workflow errors to HTTP status codes. It returns 0 for
// errors it does not recognize so callers can fall through to their own mapping.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyResult), errors.Is(err, ErrSchemaViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstream):
		return http.StatusInternalServerError
	}
	return 0
}
