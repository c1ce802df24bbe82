// Package auth provides JWT token issuance/validation and password hashing
// for the admin back office.
//
// The flow is deliberately simple: POST /api/admin/login with email and
// password, get back a signed bearer token, present it on every admin
// request in the Authorization header. Tokens are stateless — the server
// keeps no session table, and the only invalidation is the fixed 24-hour
// expiry. There is no refresh or revocation mechanism.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an admin token.
const TokenTTL = 24 * time.Hour

const issuer = "gamevault"

// Claims is the JWT payload for admin tokens. The admin's internal ID goes
// in the standard "sub" claim; the email rides along as a custom claim so
// the dashboard can display it without a DB lookup.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the admin ID stored in the token's Subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService signs and verifies admin bearer tokens.
// It holds the HMAC secret used for both operations.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production;
// anything under 16 characters is rejected outright.
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Generate creates and signs a token for the given admin, valid for TokenTTL.
func (s *TokenService) Generate(userID, email string) (string, error) {
	return s.generate(userID, email, TokenTTL)
}

// GenerateWithDuration creates a token with a custom expiry.
// Used by tests to mint already-expired tokens.
func (s *TokenService) GenerateWithDuration(userID, email string, d time.Duration) (string, error) {
	return s.generate(userID, email, d)
}

func (s *TokenService) generate(userID, email string, d time.Duration) (string, error) {
	now := time.Now()

	c := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string, returning its claims.
//
// The jwt library checks the signature, the expiry, and the issuer.
// Pinning the algorithm to HS256 via WithValidMethods blocks algorithm
// confusion attacks ("none"-signed tokens and friends).
//
// Any failure — malformed, expired, tampered — is an error here; callers
// treat it as "unauthorized", not as a system fault.
func (s *TokenService) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("auth: token expired")
		}
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("auth: invalid token claims")
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("auth: token has no subject")
	}

	return c, nil
}
