// Package service contains the business logic layer.
//
// Handlers parse HTTP and write JSON; services enforce the rules and talk
// to repository interfaces; repositories own the storage details. Services
// return apperror values, never HTTP status codes and never raw driver
// errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gamevault/gamevault/internal/apperror"
	"github.com/gamevault/gamevault/internal/auth"
	"github.com/gamevault/gamevault/internal/model"
	"github.com/gamevault/gamevault/internal/repository"
)

// AuthService handles admin authentication: credential checks, token
// issuance, and account registration.
type AuthService struct {
	admins    repository.AdminRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all dependencies injected.
func NewAuthService(
	admins repository.AdminRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		admins:    admins,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the authenticated admin and the issued token.
type AuthResult struct {
	User  *model.AdminUser
	Token string
}

// Authenticate validates an email/password pair and issues a bearer token.
//
// "No such active account" and "wrong password" both come back as the same
// Unauthorized error — a login endpoint must not reveal which half failed.
// The bcrypt comparison underneath is constant-time.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("credentials", "email and password are required")
	}

	user, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("service/auth: looking up admin: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		s.logger.Warn("failed login attempt", slog.String("email", email))
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for %s: %w", user.ID, err)
	}

	s.logger.Info("admin authenticated", slog.String("userID", user.ID))

	return &AuthResult{User: user, Token: token}, nil
}

// Register creates a new admin account with a freshly hashed password.
// A duplicate email surfaces as the typed conflict from the repository.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.AdminUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.ValidationFailed("email", "a valid email is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", "password is too long")
	}

	user := &model.AdminUser{
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.admins.CreateAdmin(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		s.logger.Error("failed to create admin",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("service/auth: creating admin: %w", err)
	}

	s.logger.Info("admin registered", slog.String("userID", user.ID))
	return user, nil
}

// VerifyToken validates a bearer token and returns its claims.
// Any failure means unauthorized, not a system error.
func (s *AuthService) VerifyToken(tokenStr string) (*auth.Claims, error) {
	claims, err := s.tokens.Validate(tokenStr)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	return claims, nil
}
