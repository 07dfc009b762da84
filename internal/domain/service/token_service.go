package service

import (
	"time"
)

// IdentityClaims is the decoded, verified payload of an access token.
// It is immutable once issued and never persisted server-side.
type IdentityClaims struct {
	UserID    int64
	Username  string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token carrying the user's identity.
	// It is stateless: issued tokens are not recorded anywhere.
	Issue(userID int64, username, email string) (string, error)

	// Verify decodes and validates a token string. Signature mismatch,
	// malformed payload and expiry all collapse to a nil claim set with an
	// error; callers never need to distinguish them.
	Verify(tokenString string) (*IdentityClaims, error)
}
