package perspectives

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// Handler provides HTTP endpoints for perspective operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "perspectives"),
	}
}

// Routes returns the route group definition for perspective endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/perspectives",
		Tags:   []string{"Perspectives"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Reframe, OpenAPI: ops.Reframe},
			{Method: "GET", Pattern: "", Handler: h.ListByPrompt, OpenAPI: ops.ListByPrompt},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: ops.Find},
		},
	}
}

// Reframe requests a perspective rewrite and returns the stored result.
func (h *Handler) Reframe(w http.ResponseWriter, r *http.Request) {
	var cmd ReframeCommand
	if !handlers.Decode(w, r, h.logger, &cmd) {
		return
	}

	rw, err := h.sys.Reframe(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rw)
}

// ListByPrompt returns the rewrites recorded for the prompt_id query parameter.
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

// Find returns a single rewrite by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	rw, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rw)
}
