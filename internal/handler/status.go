package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/service"
)

// StatusHandler serves the client status-check endpoints backed by MongoDB.
type StatusHandler struct {
	status *service.StatusService
	logger *slog.Logger
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(status *service.StatusService, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{status: status, logger: logger}
}

type statusRequest struct {
	ClientName string `json:"client_name"`
}

// HandleCreate records a status check.
//
// HTTP: POST /api/status
// Body: {"client_name": "..."} — 400 when missing.
// The response is the stored document, unwrapped (no data envelope; this
// endpoint predates the catalog API's conventions).
func (h *StatusHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	check, err := h.status.Create(r.Context(), req.ClientName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, check)
}

// HandleList returns recorded status checks (up to 1000).
//
// HTTP: GET /api/status
func (h *StatusHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	checks, err := h.status.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}
