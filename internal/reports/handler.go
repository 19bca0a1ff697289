package reports

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/pkg/handlers"
	"github.com/JaimeStill/unmask/pkg/routes"
)

// Handler provides HTTP endpoints for report operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reports"),
	}
}

// Routes returns the route group definition for report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/sessions/report",
		Tags:   []string{"Reports"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Generate, OpenAPI: ops.Generate},
			{Method: "POST", Pattern: "/snapshot", Handler: h.Snapshot, OpenAPI: ops.Snapshot},
			{Method: "GET", Pattern: "/snapshot", Handler: h.FindSnapshot, OpenAPI: ops.FindSnapshot},
		},
	}
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get("session_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSessionID)
		return uuid.Nil, false
	}
	return id, true
}

// Generate renders the session report in the format query parameter.
// JSON is returned inline; PDF is returned as an attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	doc, err := h.sys.Generate(r.Context(), id, r.URL.Query().Get("format"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	filename := doc.Filename
	if doc.ContentType == "application/json" {
		filename = ""
	}
	handlers.RespondBytes(w, http.StatusOK, doc.ContentType, filename, doc.Data)
}

// Snapshot stores the current report for the session.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.sys.Snapshot(r.Context(), id, r.URL.Query().Get("format"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, snap)
}

// FindSnapshot returns the stored snapshot for the session.
func (h *Handler) FindSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.sys.FindSnapshot(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}
