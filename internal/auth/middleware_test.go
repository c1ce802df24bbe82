package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing header", "", ""},
		{"no prefix", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc.def.ghi", ""},
		{"lowercase bearer", "bearer abc.def.ghi", ""},
		{"prefix only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractToken(tt.header); got != tt.want {
				t.Errorf("ExtractToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ts := newTestTokenService(t)

	// The wrapped handler records whether it ran and what claims it saw.
	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAdmin(ts)(next)

	t.Run("valid token passes and sets claims", func(t *testing.T) {
		gotClaims = nil
		token, _ := ts.Generate("admin-1", "admin@x.com")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if gotClaims == nil || gotClaims.UserID() != "admin-1" {
			t.Errorf("handler claims = %+v, want subject admin-1", gotClaims)
		}
	})

	t.Run("missing token is 401", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/api/admin/games", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
		if gotClaims != nil {
			t.Error("handler should not run without a token")
		}
	})

	t.Run("expired token is 401", func(t *testing.T) {
		token, _ := ts.GenerateWithDuration("admin-1", "admin@x.com", -1)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/games", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})
}
