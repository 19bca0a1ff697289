package reports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/unmask/internal/sessions"
)

// Domain errors for report operations.
var (
	ErrNotFound          = errors.New("report snapshot not found")
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrInvalidSessionID  = errors.New("session_id query parameter must be a UUID")
	ErrUnencodableText   = errors.New("report text has characters the pdf font cannot draw")
)

// MapHTTPStatus maps report and owning session errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, sessions.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnsupportedFormat), errors.Is(err, ErrInvalidSessionID):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnencodableText):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
