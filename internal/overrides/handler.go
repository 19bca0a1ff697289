package overrides

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// Handler provides HTTP endpoints for human override operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "overrides"),
	}
}

// Routes returns the route group definition for override endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/human-overrides",
		Tags:   []string{"Human Overrides"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Record, OpenAPI: ops.Record},
			{Method: "GET", Pattern: "", Handler: h.FindByPrompt, OpenAPI: ops.FindByPrompt},
		},
	}
}

// Record stores a reviewer's override.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var cmd RecordCommand
	if !handlers.Decode(w, r, h.logger, &cmd) {
		return
	}

	o, err := h.sys.Record(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, o)
}

// FindByPrompt returns the override for the prompt_id query parameter.
func (h *Handler) FindByPrompt(w http.ResponseWriter, r *http.Request) {
	promptID, err := uuid.Parse(r.URL.Query().Get("prompt_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPromptID)
		return
	}

	o, err := h.sys.FindByPrompt(r.Context(), promptID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}
