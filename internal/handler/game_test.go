package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/gamevault/internal/handler"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository/memory"
	"github.com/gamevault/gamevault/internal/service"
)

// newGameRouter mounts a GameHandler on a chi router the same way the
// server does, minus the auth middleware — these tests exercise the
// handler layer, not token checks.
func newGameRouter(t *testing.T, opts ...memory.Option) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := memory.New(opts...)
	h := handler.NewGameHandler(service.NewGameService(store, logger), true, logger)

	r := chi.NewRouter()
	r.Get("/api/games", h.HandleList)
	r.Get("/api/games/{slug}", h.HandleGetBySlug)
	r.Get("/api/admin/games", h.HandleAdminList)
	r.Post("/api/admin/games", h.HandleCreate)
	r.Put("/api/admin/games/{id}", h.HandleUpdate)
	r.Delete("/api/admin/games/{id}", h.HandleDelete)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeGame(t *testing.T, rr *httptest.ResponseRecorder) model.Game {
	t.Helper()
	var res struct {
		Data model.Game `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	return res.Data
}

func decodeGames(t *testing.T, rr *httptest.ResponseRecorder) []model.Game {
	t.Helper()
	var res struct {
		Data []model.Game `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	return res.Data
}

func TestGameHandler_Create(t *testing.T) {
	router := newGameRouter(t)

	t.Run("defaults applied", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/api/admin/games",
			`{"title":"Test Game","category":"Puzzle","downloadUrl":"https://cdn.example.com/test.zip"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		game := decodeGame(t, rr)
		assert.Equal(t, "test-game", game.Slug)
		assert.Equal(t, int64(0), game.Downloads)
		assert.False(t, game.Featured)
		assert.NotEmpty(t, game.ID)
		assert.NotNil(t, game.PublishedAt)
	})

	t.Run("duplicate slug is 409", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/api/admin/games",
			`{"title":"Test Game","category":"Puzzle","downloadUrl":"https://cdn.example.com/test.zip"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "conflict", res.Error)
	})

	t.Run("unknown category is 400", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/api/admin/games",
			`{"title":"Bad","category":"Sports","downloadUrl":"https://cdn.example.com/bad.zip"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "validation_error", res.Error)
	})

	t.Run("invalid JSON body is 400", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPost, "/api/admin/games", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGameHandler_PublicReads(t *testing.T) {
	router := newGameRouter(t, memory.WithSeed())

	t.Run("list returns seeded catalog", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games", "")
		require.Equal(t, http.StatusOK, rr.Code)
		games := decodeGames(t, rr)
		assert.Len(t, games, 6)
	})

	t.Run("featured strip ordered by downloads", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games?featured=true", "")
		require.Equal(t, http.StatusOK, rr.Code)
		games := decodeGames(t, rr)
		require.NotEmpty(t, games)
		assert.Equal(t, "clash-of-clans", games[0].Slug)
		for _, g := range games {
			assert.True(t, g.Featured)
		}
	})

	t.Run("search and category compose", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games?search=wukong&category=Action", "")
		require.Equal(t, http.StatusOK, rr.Code)
		games := decodeGames(t, rr)
		require.Len(t, games, 1)
		assert.Equal(t, "wukong", games[0].Slug)
	})

	t.Run("category all means no filter", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games?category=all", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeGames(t, rr), 6)
	})

	t.Run("get by slug", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games/wukong", "")
		require.Equal(t, http.StatusOK, rr.Code)
		game := decodeGame(t, rr)
		assert.Equal(t, "Wukong", game.Title)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/games/no-such-game", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "not_found", res.Error)
	})
}

func TestGameHandler_UpdateDelete(t *testing.T) {
	router := newGameRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/api/admin/games",
		`{"title":"Mutable","category":"RPG","downloadUrl":"https://cdn.example.com/m.zip"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	created := decodeGame(t, rr)

	t.Run("update overwrites fields", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPut, "/api/admin/games/"+created.ID,
			`{"title":"Mutable v2","category":"RPG","downloadUrl":"https://cdn.example.com/m2.zip","slug":"mutable","featured":true,"downloads":42}`)

		require.Equal(t, http.StatusOK, rr.Code)
		game := decodeGame(t, rr)
		assert.Equal(t, "Mutable v2", game.Title)
		assert.Equal(t, int64(42), game.Downloads)
		assert.True(t, game.Featured)
		assert.Equal(t, created.ID, game.ID)
	})

	t.Run("update of unknown id is 404", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodPut, "/api/admin/games/missing",
			`{"title":"X","category":"RPG","downloadUrl":"https://cdn.example.com/x.zip"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete returns confirmation", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/api/admin/games/"+created.ID, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var res map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Game deleted successfully", res["message"])

		rr = doRequest(t, router, http.MethodGet, "/api/games/mutable", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
