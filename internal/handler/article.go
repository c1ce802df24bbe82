package handler

import (
	"log/slog"
	"net/http"

	"github.com/gamevault/gamevault/internal/service"
)

// ArticleHandler serves the blog's read-only article endpoints.
type ArticleHandler struct {
	articles *service.ArticleService
	logger   *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles *service.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, logger: logger}
}

// HandleList serves GET /api/articles.
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, articles)
}

// HandleGetBySlug serves GET /api/articles/{slug}.
func (h *ArticleHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, article)
}
