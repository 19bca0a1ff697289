package crossexams

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// Handler provides HTTP endpoints for cross-examination operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "crossexams"),
	}
}

// Routes returns the route group definition for cross-examination endpoints.
// History keeps its legacy path under /prompts.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags: []string{"Cross-Examination"},
		Children: []routes.Group{
			{
				Prefix: "/cross-exams",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.Examine, OpenAPI: ops.Examine},
					{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: ops.Find},
				},
			},
			{
				Prefix: "/prompts",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/get-cross-exams-qa", Handler: h.History, OpenAPI: ops.History},
				},
			},
		},
	}
}

// Examine asks a follow-up question and returns the stored turn.
func (h *Handler) Examine(w http.ResponseWriter, r *http.Request) {
	var cmd ExamineCommand
	if !handlers.Decode(w, r, h.logger, &cmd) {
		return
	}

	t, err := h.sys.Examine(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, t)
}

// Find returns a single turn by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	t, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// History returns the chronological thread for the prompt_id query parameter.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	promptID, err := uuid.Parse(r.URL.Query().Get("prompt_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPromptID)
		return
	}

	items, err := h.sys.History(r.Context(), promptID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
