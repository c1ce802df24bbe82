package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

func TestSeededStore_HasDemoCatalog(t *testing.T) {
	store := New(WithSeed())

	games, err := store.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(games) != 6 {
		t.Errorf("seeded store has %d games, want 6", len(games))
	}

	articles, err := store.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("seeded store has %d articles, want 1", len(articles))
	}
}

func TestSeededStore_SearchMatchesSQLSemantics(t *testing.T) {
	store := New(WithSeed())

	t.Run("case-insensitive title match", func(t *testing.T) {
		games, err := store.Search(context.Background(), repository.GameFilter{Query: "WUKONG"})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(games) != 1 || games[0].Slug != "wukong" {
			t.Errorf("Search(WUKONG) = %v, want just wukong", games)
		}
	})

	t.Run("category all is no filter", func(t *testing.T) {
		games, _ := store.Search(context.Background(), repository.GameFilter{Category: "all"})
		if len(games) != 6 {
			t.Errorf("Search(category=all) returned %d games, want 6", len(games))
		}
	})

	t.Run("featured ordered by downloads desc with limit", func(t *testing.T) {
		games, _ := store.Search(context.Background(), repository.GameFilter{FeaturedOnly: true, Limit: 3})
		if len(games) != 3 {
			t.Fatalf("Search(featured, limit=3) returned %d games, want 3", len(games))
		}
		want := []string{"clash-of-clans", "civilization", "dragonball-showdown"}
		for i, slug := range want {
			if games[i].Slug != slug {
				t.Errorf("games[%d].Slug = %q, want %q", i, games[i].Slug, slug)
			}
		}
	})
}

func TestEmptyStore_CRUD(t *testing.T) {
	store := New()
	ctx := context.Background()

	game := &model.Game{Title: "Test Game", Category: "Puzzle", Slug: "test-game"}
	if err := store.Create(ctx, game); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if game.ID == "" {
		t.Error("Create() did not set an ID")
	}

	dup := &model.Game{Title: "Other", Category: "Puzzle", Slug: "test-game"}
	if err := store.Create(ctx, dup); !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("Create() duplicate slug error = %v, want ErrConflict", err)
	}

	game.Title = "Renamed"
	if err := store.Update(ctx, game); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	found, err := store.GetBySlug(ctx, "test-game")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if found.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", found.Title, "Renamed")
	}

	if err := store.Delete(ctx, game.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetBySlug(ctx, "test-game"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetBySlug() after delete error = %v, want ErrNotFound", err)
	}

	// Idempotent delete
	if err := store.Delete(ctx, game.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
}

func TestGetArticleBySlug(t *testing.T) {
	store := New(WithSeed())

	article, err := store.GetArticleBySlug(context.Background(), "gaming-trends-2025")
	if err != nil {
		t.Fatalf("GetArticleBySlug() error = %v", err)
	}
	if article.Author != "GameVault Team" {
		t.Errorf("Author = %q, want %q", article.Author, "GameVault Team")
	}

	if _, err := store.GetArticleBySlug(context.Background(), "missing"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetArticleBySlug(missing) error = %v, want ErrNotFound", err)
	}
}
