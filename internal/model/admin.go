package model

import "time"

// AdminUser represents a back-office administrator account.
//
// PasswordHash holds the bcrypt hash of the password. It is tagged
// `json:"-"` so it can never leak through an API response — every
// endpoint that returns a user serializes this struct directly.
type AdminUser struct {
	ID           string    `json:"id"    db:"id"`
	Email        string    `json:"email" db:"email"` // unique across all admins
	PasswordHash string    `json:"-"     db:"password_hash"`
	Active       bool      `json:"-"     db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
