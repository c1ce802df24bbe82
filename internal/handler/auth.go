package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/service"
)

// AuthHandler serves the admin login and registration endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse returns the token alongside a minimal user projection.
// The AdminUser struct's json tags already exclude the password hash.
type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// HandleLogin authenticates an admin and issues a bearer token.
//
// HTTP: POST /api/admin/login
// Body: {"email": "...", "password": "..."}
// 200 {token, user} on success; 400 on missing fields; 401 on bad
// credentials.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, apperror.ValidationFailed("credentials", "email and password are required"))
		return
	}

	result, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// HandleRegister creates a new admin account.
//
// HTTP: POST /api/admin/register
// 200 {user} on success; 400 on missing fields; 409 on duplicate email.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
