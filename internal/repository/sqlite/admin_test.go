package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/model"
)

func createTestAdmin(t *testing.T, db *DB, email string) *model.AdminUser {
	t.Helper()
	user := &model.AdminUser{Email: email, PasswordHash: "$2a$04$fakehashforstoragetests"}
	if err := db.CreateAdmin(context.Background(), user); err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}
	return user
}

func TestCreateAdmin(t *testing.T) {
	db := newTestDB(t)

	user := createTestAdmin(t, db, "admin@x.com")

	if user.ID == "" {
		t.Error("CreateAdmin() did not set user.ID")
	}
	if !user.Active {
		t.Error("CreateAdmin() should mark the account active")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreateAdmin() did not set CreatedAt")
	}
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createTestAdmin(t, db, "admin@x.com")

	dup := &model.AdminUser{Email: "admin@x.com", PasswordHash: "hash"}
	err := db.CreateAdmin(context.Background(), dup)
	if err == nil {
		t.Fatal("CreateAdmin() should fail on a duplicate email")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("CreateAdmin() error = %v, want ErrConflict", err)
	}
}

func TestGetAdminByEmail(t *testing.T) {
	db := newTestDB(t)
	created := createTestAdmin(t, db, "admin@x.com")

	found, err := db.GetAdminByEmail(context.Background(), "admin@x.com")
	if err != nil {
		t.Fatalf("GetAdminByEmail() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %q, want %q", found.ID, created.ID)
	}
	if found.PasswordHash == "" {
		t.Error("GetAdminByEmail() must return the stored hash for verification")
	}
}

func TestGetAdminByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetAdminByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetAdminByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestGetAdminByEmail_CaseSensitive(t *testing.T) {
	db := newTestDB(t)
	createTestAdmin(t, db, "admin@x.com")

	// Exact-match semantics: a differently-cased email is a different key.
	if _, err := db.GetAdminByEmail(context.Background(), "Admin@X.com"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetAdminByEmail() with different casing error = %v, want ErrNotFound", err)
	}
}

func TestGetAdminByEmail_InactiveInvisible(t *testing.T) {
	db := newTestDB(t)
	user := createTestAdmin(t, db, "admin@x.com")

	if _, err := db.conn.Exec(`UPDATE admin_users SET is_active = 0 WHERE id = ?`, user.ID); err != nil {
		t.Fatalf("deactivating: %v", err)
	}

	if _, err := db.GetAdminByEmail(context.Background(), "admin@x.com"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetAdminByEmail() for inactive admin error = %v, want ErrNotFound", err)
	}
}
