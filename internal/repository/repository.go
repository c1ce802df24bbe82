// Package repository declares the storage interfaces the services depend on.
//
// Concrete implementations live in subpackages: sqlite (the real store),
// memory (the legacy mock-data provider, also used in tests), and mongodb
// (the status-check collection). Services only ever see these interfaces,
// so the provider is chosen once, at composition time in internal/server.
package repository

import (
	"context"

	"github.com/gamevault/gamevault/internal/model"
)

// GameFilter selects and orders games for list/search reads.
//
// Zero value means: published games only, no text or category filter.
// Query and Category compose with AND when both are set. Category "all"
// is a sentinel meaning "no category filter" (the public catalog's
// dropdown sends it literally).
type GameFilter struct {
	Query         string // case-insensitive substring match on title
	Category      string // exact category match; "" or "all" disables
	FeaturedOnly  bool
	IncludeDrafts bool // admin option: include games with no published_at
	Limit         int  // 0 means no limit
}

type GameRepository interface {
	// List returns games ordered most-recently-created first.
	List(ctx context.Context, includeDrafts bool) ([]model.Game, error)
	// Search returns published games matching the filter, ordered by
	// downloads descending.
	Search(ctx context.Context, filter GameFilter) ([]model.Game, error)
	// GetBySlug returns the published game with the given slug, or
	// apperror.ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Game, error)
	// Create inserts the game, filling ID, DocumentID, and timestamps.
	// A slug collision returns apperror.DuplicateSlug.
	Create(ctx context.Context, game *model.Game) error
	// Update overwrites the mutable fields of the game with the given ID.
	// Returns apperror.ErrNotFound if no such row exists.
	Update(ctx context.Context, game *model.Game) error
	// Delete removes the game with the given ID. Deleting a missing ID
	// is not an error — the operation is idempotent.
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	// CreateAdmin inserts a new admin account. A duplicate email returns
	// apperror.DuplicateEmail.
	CreateAdmin(ctx context.Context, user *model.AdminUser) error
	// GetAdminByEmail returns the active admin with the given email
	// (case-sensitive exact match), or apperror.ErrNotFound.
	GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error)
}

type ArticleRepository interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
}

type StatusRepository interface {
	CreateStatus(ctx context.Context, check *model.StatusCheck) error
	// ListStatus returns up to limit checks (the HTTP layer caps at 1000).
	ListStatus(ctx context.Context, limit int64) ([]model.StatusCheck, error)
}
