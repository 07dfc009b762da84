// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"plateful/config"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/service"
	"plateful/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing and verifying tokens.
	ttl    time.Duration    // Time-to-live for issued tokens.
	now    func() time.Time // Clock source, swappable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.AccessTokenTTL(),
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token embedding the user's identity claims.
func (s *jwtService) Issue(userID int64, username, email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"email":    email,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string and returns the identity claims it carries.
// Any failure (bad signature, wrong algorithm, expired, malformed) yields ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (*service.IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claimsToIdentity(claims)
}

// claimsToIdentity converts raw JWT claims into the domain identity representation.
// JSON numbers decode as float64, so the user id is converted back to int64.
func claimsToIdentity(claims jwt.MapClaims) (*service.IdentityClaims, error) {
	rawUserID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("token is missing the user_id claim")
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	identity := &service.IdentityClaims{
		UserID:   int64(rawUserID),
		Username: username,
		Email:    email,
	}

	if iat, ok := claims["iat"].(float64); ok {
		identity.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		identity.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return identity, nil
}
