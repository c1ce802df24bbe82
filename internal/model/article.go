package model

import "time"

// Article is a blog post shown on the site's news pages.
// Articles are read-only in this API — they come from the seeded
// data provider, not from admin CRUD.
type Article struct {
	ID            string    `json:"id"`
	DocumentID    string    `json:"documentId"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Slug          string    `json:"slug"`
	Author        string    `json:"author"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"publishedDate"`
}
