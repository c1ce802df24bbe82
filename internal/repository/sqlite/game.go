package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// Compile-time check that *DB implements repository.GameRepository.
var _ repository.GameRepository = (*DB)(nil)

const gameColumns = `id, document_id, title, description, category, download_url,
	slug, featured, downloads, created_at, updated_at, published_at`

// Create inserts a new game. ID, DocumentID, and all three timestamps are
// generated here — a freshly created game is published immediately.
func (db *DB) Create(ctx context.Context, game *model.Game) error {
	now := time.Now()
	game.ID = xid.New().String()
	if game.DocumentID == "" {
		game.DocumentID = xid.New().String()
	}
	game.CreatedAt = now
	game.UpdatedAt = now
	game.PublishedAt = &now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO games (id, document_id, title, description, category, download_url,
		                    slug, featured, downloads, created_at, updated_at, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.ID,
		game.DocumentID,
		game.Title,
		game.Description,
		game.Category,
		game.DownloadURL,
		game.Slug,
		game.Featured,
		game.Downloads,
		game.CreatedAt,
		game.UpdatedAt,
		game.PublishedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "games.slug") {
			return apperror.DuplicateSlug(game.Slug)
		}
		return fmt.Errorf("sqlite: creating game: %w", err)
	}

	return nil
}

// GetBySlug returns the published game with the given slug.
// Drafts are invisible here — slug lookups serve public detail pages only.
func (db *DB) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE slug = ? AND published_at IS NOT NULL`,
		slug,
	)

	game, err := scanGame(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("game", slug)
		}
		return nil, fmt.Errorf("sqlite: getting game %s: %w", slug, err)
	}

	return game, nil
}

// List returns games newest-created first. includeDrafts lifts the
// published_at gate for the admin dashboard.
func (db *DB) List(ctx context.Context, includeDrafts bool) ([]model.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games`
	if !includeDrafts {
		query += ` WHERE published_at IS NOT NULL`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// Search returns published games matching the filter, ordered by downloads
// descending. The WHERE clause is built conditionally with placeholders —
// values never get concatenated into the SQL.
func (db *DB) Search(ctx context.Context, filter repository.GameFilter) ([]model.Game, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + gameColumns + ` FROM games WHERE published_at IS NOT NULL`)
	var args []any

	if filter.Query != "" {
		// LIKE is case-insensitive for ASCII in SQLite by default, which
		// covers the catalog's titles.
		sb.WriteString(` AND title LIKE ?`)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Category != "" && filter.Category != "all" {
		sb.WriteString(` AND category = ?`)
		args = append(args, filter.Category)
	}
	if filter.FeaturedOnly {
		sb.WriteString(` AND featured = 1`)
	}

	sb.WriteString(` ORDER BY downloads DESC`)

	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, filter.Limit)
	}

	rows, err := db.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: searching games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// Update overwrites the mutable fields of the game row and refreshes
// updated_at. RowsAffected distinguishes "no such row" from success
// without a second query.
func (db *DB) Update(ctx context.Context, game *model.Game) error {
	game.UpdatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE games
		 SET title = ?, description = ?, category = ?, download_url = ?,
		     slug = ?, featured = ?, downloads = ?, updated_at = ?
		 WHERE id = ?`,
		game.Title,
		game.Description,
		game.Category,
		game.DownloadURL,
		game.Slug,
		game.Featured,
		game.Downloads,
		game.UpdatedAt,
		game.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "games.slug") {
			return apperror.DuplicateSlug(game.Slug)
		}
		return fmt.Errorf("sqlite: updating game %s: %w", game.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("game", game.ID)
	}

	// Read back the immutable fields so the caller gets the full record.
	var published sql.NullTime
	err = db.conn.QueryRowContext(ctx,
		`SELECT document_id, created_at, published_at FROM games WHERE id = ?`,
		game.ID,
	).Scan(&game.DocumentID, &game.CreatedAt, &published)
	if err != nil {
		return fmt.Errorf("sqlite: reloading game %s: %w", game.ID, err)
	}
	if published.Valid {
		t := published.Time
		game.PublishedAt = &t
	}

	return nil
}

// Delete removes the game with the given ID. Deleting an ID that does not
// exist is a no-op, not an error.
func (db *DB) Delete(ctx context.Context, id string) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting game %s: %w", id, err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows so scanGame serves both.
type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*model.Game, error) {
	var g model.Game
	var published sql.NullTime

	err := s.Scan(
		&g.ID,
		&g.DocumentID,
		&g.Title,
		&g.Description,
		&g.Category,
		&g.DownloadURL,
		&g.Slug,
		&g.Featured,
		&g.Downloads,
		&g.CreatedAt,
		&g.UpdatedAt,
		&published,
	)
	if err != nil {
		return nil, err
	}

	if published.Valid {
		t := published.Time
		g.PublishedAt = &t
	}

	return &g, nil
}

func collectGames(rows *sql.Rows) ([]model.Game, error) {
	games := []model.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning game row: %w", err)
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating games: %w", err)
	}
	return games, nil
}
