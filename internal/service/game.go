package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// DefaultFeaturedLimit caps the featured-games strip on the home page.
const DefaultFeaturedLimit = 6

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, any run of
// non-alphanumeric characters collapsed to a single hyphen, and leading/
// trailing hyphens trimmed. "Call Me Champion!" becomes "call-me-champion".
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GameService handles catalog business logic over an injected repository —
// the SQL store in production, the mock provider in the legacy composition,
// an empty in-memory store in tests.
type GameService struct {
	repo   repository.GameRepository
	logger *slog.Logger
}

// NewGameService creates a GameService.
func NewGameService(repo repository.GameRepository, logger *slog.Logger) *GameService {
	return &GameService{repo: repo, logger: logger}
}

// List returns games newest-created first. includeDrafts is the admin
// dashboard's option to see unpublished entries; public callers pass false.
func (s *GameService) List(ctx context.Context, includeDrafts bool) ([]model.Game, error) {
	games, err := s.repo.List(ctx, includeDrafts)
	if err != nil {
		s.logger.Error("failed to list games", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return games, nil
}

// GetBySlug returns the published game with the given slug.
func (s *GameService) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.ValidationFailed("slug", "game slug is required")
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Featured returns published featured games ordered by downloads, capped
// at limit (default 6 when limit <= 0).
func (s *GameService) Featured(ctx context.Context, limit int) ([]model.Game, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	games, err := s.repo.Search(ctx, repository.GameFilter{FeaturedOnly: true, Limit: limit})
	if err != nil {
		s.logger.Error("failed to load featured games", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading featured games: %w", err)
	}
	return games, nil
}

// Search returns published games where the title contains query
// (case-insensitively) AND the category matches exactly. Both filters are
// optional; "all" disables the category filter. Results are ordered by
// downloads descending — absent both filters this is the full published
// catalog in that order.
func (s *GameService) Search(ctx context.Context, query, category string) ([]model.Game, error) {
	games, err := s.repo.Search(ctx, repository.GameFilter{
		Query:    strings.TrimSpace(query),
		Category: strings.TrimSpace(category),
	})
	if err != nil {
		s.logger.Error("failed to search games",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("searching games: %w", err)
	}
	return games, nil
}

// Create validates the input and inserts a new game.
//
// Defaults per the catalog's rules: featured false and downloads 0 when
// omitted (the zero values), slug derived from the title when the client
// didn't supply one. The repository sets created/updated/published to now.
func (s *GameService) Create(ctx context.Context, input model.GameInput) (*model.Game, error) {
	game, err := s.buildGame(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("id", game.ID),
		slog.String("slug", game.Slug),
	)
	return game, nil
}

// Update overwrites the mutable fields of the game with the given id.
func (s *GameService) Update(ctx context.Context, id string, input model.GameInput) (*model.Game, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "game id is required")
	}

	game, err := s.buildGame(input)
	if err != nil {
		return nil, err
	}
	game.ID = id

	if err := s.repo.Update(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game updated", slog.String("id", id))
	return game, nil
}

// Delete removes the game with the given id. The storage layer is
// idempotent, so deleting a missing id succeeds quietly.
func (s *GameService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "game id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("game deleted", slog.String("id", id))
	return nil
}

// buildGame validates a GameInput and shapes it into a model.Game.
func (s *GameService) buildGame(input model.GameInput) (*model.Game, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if !model.ValidCategory(input.Category) {
		return nil, apperror.ValidationFailed("category",
			fmt.Sprintf("category must be one of: %s", strings.Join(model.Categories, ", ")))
	}
	if strings.TrimSpace(input.DownloadURL) == "" {
		return nil, apperror.ValidationFailed("downloadUrl", "download URL is required")
	}
	if input.Downloads < 0 {
		return nil, apperror.ValidationFailed("downloads", "downloads must not be negative")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, apperror.ValidationFailed("slug", "title yields an empty slug")
	}

	return &model.Game{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		DownloadURL: strings.TrimSpace(input.DownloadURL),
		Slug:        slug,
		Featured:    input.Featured,
		Downloads:   input.Downloads,
	}, nil
}
