package prompts

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints, including
// the session-scoped listing.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags: []string{"Prompts"},
		Children: []routes.Group{
			{
				Prefix: "/prompts",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.Analyze, OpenAPI: ops.Analyze},
					{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: ops.Find},
				},
			},
			{
				Prefix: "/sessions",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/{id}/prompts", Handler: h.ListBySession, OpenAPI: ops.ListBySession},
				},
			},
		},
	}
}

// Analyze submits a prompt to the collaborator and returns the stored prompt.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var cmd AnalyzeCommand
	if !handlers.Decode(w, r, h.logger, &cmd) {
		return
	}

	p, err := h.sys.Analyze(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

// Find returns a single prompt by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	p, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// ListBySession returns the prompts of the session named by the id path parameter.
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, sessions.ErrInvalidID)
		return
	}

	items, err := h.sys.ListBySession(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
