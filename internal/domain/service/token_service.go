// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"tracker/internal/domain/entity"
)

// TokenClaims is the decoded, verified content of an access token. The
// subject is coerced to a numeric user ID regardless of how it was encoded.
type TokenClaims struct {
	UserID    int64
	Email     string
	Role      entity.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// IssueToken creates a signed access token for the user.
	IssueToken(user *entity.User) (string, error)

	// VerifyToken validates the signature and expiry of a token string and
	// returns its claims. Any failure is terminal for the caller's attempt;
	// there is no retry semantics.
	VerifyToken(tokenString string) (*TokenClaims, error)
}
