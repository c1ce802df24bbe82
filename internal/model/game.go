// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain values with json/db
// struct tags, no behaviour beyond small helpers.
package model

import "time"

// Categories is the fixed set of game categories the catalog accepts.
// The admin form offers exactly these; the service rejects anything else.
var Categories = []string{"Action", "RPG", "Strategy", "Adventure", "Simulation", "Puzzle"}

// ValidCategory reports whether c is one of the allowed game categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Game represents a downloadable game listing in the catalog.
//
// PublishedAt gates visibility: a game with a nil PublishedAt is a draft
// and is invisible to all public read queries. The slug is the URL-safe
// identifier derived from the title (unique across the catalog).
type Game struct {
	ID          string     `json:"id"          db:"id"`
	DocumentID  string     `json:"documentId"  db:"document_id"` // external/CMS document identifier
	Title       string     `json:"title"       db:"title"`
	Description string     `json:"description" db:"description"`
	Category    string     `json:"category"    db:"category"`
	DownloadURL string     `json:"downloadUrl" db:"download_url"`
	Slug        string     `json:"slug"        db:"slug"`
	Featured    bool       `json:"featured"    db:"featured"`
	Downloads   int64      `json:"downloads"   db:"downloads"`
	CreatedAt   time.Time  `json:"createdAt"   db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   db:"updated_at"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
}

// Published reports whether the game is visible to public reads.
func (g *Game) Published() bool {
	return g.PublishedAt != nil && !g.PublishedAt.IsZero()
}

// GameInput carries the client-supplied fields for create/update
// operations. Slug may be empty on create, in which case the service
// derives it from the title.
type GameInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DownloadURL string `json:"downloadUrl"`
	Slug        string `json:"slug"`
	Featured    bool   `json:"featured"`
	Downloads   int64  `json:"downloads"`
}
