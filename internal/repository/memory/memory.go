// Package memory is the legacy mock-data provider: a full in-memory
// implementation of the game and article repositories.
//
// It exists for two reasons. First, the site originally shipped with a
// hard-coded demo catalog so the frontend worked before any database was
// provisioned; New(WithSeed()) reproduces that. Second, an empty Store is
// a convenient repository for service-layer tests.
//
// The provider is selected at composition time (DATA_PROVIDER=mock) and is
// never mixed with the SQL-backed provider within one request.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

var (
	_ repository.GameRepository    = (*Store)(nil)
	_ repository.ArticleRepository = (*Store)(nil)
)

// Store holds games and articles in maps guarded by a RWMutex.
// The HTTP server handles requests concurrently, so even the mock path
// needs the lock.
type Store struct {
	mu       sync.RWMutex
	games    map[string]*model.Game // keyed by ID
	articles []model.Article
}

// Option configures a Store.
type Option func(*Store)

// WithSeed pre-loads the demo catalog and articles.
func WithSeed() Option {
	return func(s *Store) {
		for _, g := range seedGames() {
			game := g
			s.games[game.ID] = &game
		}
		s.articles = seedArticles()
	}
}

// New creates an empty Store unless options say otherwise.
func New(opts ...Option) *Store {
	s := &Store{games: make(map[string]*model.Game)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns games newest-created first.
func (s *Store) List(_ context.Context, includeDrafts bool) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := s.collect(func(g *model.Game) bool {
		return includeDrafts || g.Published()
	})
	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	return games, nil
}

// Search filters published games and orders by downloads descending,
// mirroring the SQL provider's semantics.
func (s *Store) Search(_ context.Context, filter repository.GameFilter) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	games := s.collect(func(g *model.Game) bool {
		if !g.Published() {
			return false
		}
		if query != "" && !strings.Contains(strings.ToLower(g.Title), query) {
			return false
		}
		if filter.Category != "" && filter.Category != "all" && g.Category != filter.Category {
			return false
		}
		if filter.FeaturedOnly && !g.Featured {
			return false
		}
		return true
	})

	sort.Slice(games, func(i, j int) bool {
		return games[i].Downloads > games[j].Downloads
	})

	if filter.Limit > 0 && len(games) > filter.Limit {
		games = games[:filter.Limit]
	}
	return games, nil
}

// GetBySlug returns the published game with the given slug.
func (s *Store) GetBySlug(_ context.Context, slug string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.Slug == slug && g.Published() {
			copied := *g
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("game", slug)
}

// Create inserts the game, generating ID, DocumentID, and timestamps.
func (s *Store) Create(_ context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games {
		if g.Slug == game.Slug {
			return apperror.DuplicateSlug(game.Slug)
		}
	}

	now := time.Now()
	game.ID = xid.New().String()
	if game.DocumentID == "" {
		game.DocumentID = xid.New().String()
	}
	game.CreatedAt = now
	game.UpdatedAt = now
	game.PublishedAt = &now

	copied := *game
	s.games[game.ID] = &copied
	return nil
}

// Update overwrites the stored game's mutable fields.
func (s *Store) Update(_ context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[game.ID]
	if !ok {
		return apperror.NotFound("game", game.ID)
	}
	for _, g := range s.games {
		if g.Slug == game.Slug && g.ID != game.ID {
			return apperror.DuplicateSlug(game.Slug)
		}
	}

	if game.DocumentID == "" {
		game.DocumentID = existing.DocumentID
	}
	game.CreatedAt = existing.CreatedAt
	game.PublishedAt = existing.PublishedAt
	game.UpdatedAt = time.Now()

	copied := *game
	s.games[game.ID] = &copied
	return nil
}

// Delete removes the game; missing IDs are a no-op.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// ListArticles returns all seeded articles.
func (s *Store) ListArticles(_ context.Context) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := make([]model.Article, len(s.articles))
	copy(articles, s.articles)
	return articles, nil
}

// GetArticleBySlug returns the article with the given slug.
func (s *Store) GetArticleBySlug(_ context.Context, slug string) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			copied := a
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("article", slug)
}

// collect copies games matching keep into a fresh slice. Caller holds the lock.
func (s *Store) collect(keep func(*model.Game) bool) []model.Game {
	games := []model.Game{}
	for _, g := range s.games {
		if keep(g) {
			games = append(games, *g)
		}
	}
	return games
}
