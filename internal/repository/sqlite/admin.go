package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// Compile-time check that *DB implements repository.AdminRepository.
var _ repository.AdminRepository = (*DB)(nil)

// CreateAdmin inserts a new admin account. The UNIQUE constraint on email
// enforces one account per address; a violation comes back as the typed
// DuplicateEmail conflict, never as a raw driver error.
func (db *DB) CreateAdmin(ctx context.Context, user *model.AdminUser) error {
	now := time.Now()
	user.ID = xid.New().String()
	user.Active = true
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO admin_users (id, email, password_hash, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "admin_users.email") {
			return apperror.DuplicateEmail(user.Email)
		}
		return fmt.Errorf("sqlite: creating admin user: %w", err)
	}

	return nil
}

// GetAdminByEmail returns the active admin with the given email.
// The match is case-sensitive and exact; inactive accounts are invisible,
// so a disabled admin fails login the same way an unknown one does.
func (db *DB) GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var u model.AdminUser

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash, is_active, created_at, updated_at
		 FROM admin_users
		 WHERE email = ? AND is_active = 1`,
		email,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("admin user", email)
		}
		return nil, fmt.Errorf("sqlite: getting admin by email: %w", err)
	}

	return &u, nil
}
