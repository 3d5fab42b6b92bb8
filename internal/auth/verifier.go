// Package auth adapts the external identity service. Tokens are issued
// elsewhere; this package only verifies them and extracts the identity
// claims the rest of the application runs on.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/config"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Identity is the authenticated caller as asserted by the identity service.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Verifier validates HS256 JWTs issued by the identity service.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier from auth configuration.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// identityClaims extends standard JWT claims with the account email.
type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verify parses and validates a token, returning the caller's identity.
// The email claim is normalized before it is handed to anyone else.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Identity{
		UserID: userID,
		Email:  domain.NormalizeEmail(claims.Email),
	}, nil
}
