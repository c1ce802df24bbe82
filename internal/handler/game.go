package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/service"
)

// GameHandler serves the public catalog reads and the admin CRUD routes.
type GameHandler struct {
	games *service.GameService
	// adminListDrafts controls whether the admin dashboard list includes
	// unpublished games. Public reads never do.
	adminListDrafts bool
	logger          *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(games *service.GameService, adminListDrafts bool, logger *slog.Logger) *GameHandler {
	return &GameHandler{games: games, adminListDrafts: adminListDrafts, logger: logger}
}

// HandleList serves the public catalog.
//
// HTTP: GET /api/games?search=&category=&featured=
// All three query parameters are optional. featured=true routes to the
// featured strip (downloads desc, capped at 6); otherwise search and
// category compose with AND over published games.
func (h *GameHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var games []model.Game
	var err error
	if q.Get("featured") == "true" {
		games, err = h.games.Featured(r.Context(), 0)
	} else {
		games, err = h.games.Search(r.Context(), q.Get("search"), q.Get("category"))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, games)
}

// HandleGetBySlug serves a single game's detail page.
//
// HTTP: GET /api/games/{slug}
// 404 (not an error) when no published game has the slug.
func (h *GameHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	game, err := h.games.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, game)
}

// HandleAdminList serves the admin dashboard's game table.
//
// HTTP: GET /api/admin/games (behind RequireAdmin)
func (h *GameHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context(), h.adminListDrafts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, games)
}

// HandleCreate creates a new game listing.
//
// HTTP: POST /api/admin/games (behind RequireAdmin)
func (h *GameHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input model.GameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	game, err := h.games.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, game)
}

// HandleUpdate overwrites an existing game listing.
//
// HTTP: PUT /api/admin/games/{id} (behind RequireAdmin)
func (h *GameHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input model.GameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	game, err := h.games.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, game)
}

// HandleDelete removes a game listing.
//
// HTTP: DELETE /api/admin/games/{id} (behind RequireAdmin)
func (h *GameHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Game deleted successfully"})
}
