package insights

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// ErrInvalidPromptID is returned when the prompt_id query parameter is
// missing or malformed.
var ErrInvalidPromptID = errors.New("prompt_id query parameter must be a UUID")

// Handler provides HTTP endpoints for bias insight operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "insights"),
	}
}

// Routes returns the route group definition for bias insight endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/bias-insights",
		Tags:   []string{"Bias Insights"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Detect, OpenAPI: ops.Detect},
			{Method: "GET", Pattern: "", Handler: h.ListByPrompt, OpenAPI: ops.ListByPrompt},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: ops.Find},
		},
	}
}

// Detect scores a response for bias and returns the stored insights.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var cmd DetectCommand
	if !handlers.Decode(w, r, h.logger, &cmd) {
		return
	}

	items, err := h.sys.Detect(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, items)
}

// ListByPrompt returns the insights recorded for the prompt_id query parameter.
func (h *Handler) ListByPrompt(w http.ResponseWriter, r *http.Request) {
	promptID, err := uuid.Parse(r.URL.Query().Get("prompt_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPromptID)
		return
	}

	items, err := h.sys.ListByPrompt(r.Context(), promptID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Find returns a single insight by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	b, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, b)
}
