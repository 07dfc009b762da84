package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/service"
)

// ContextKeyIdentity is the echo.Context key holding the authenticated identity.
const ContextKeyIdentity = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// It distinguishes a missing header, a header that is not "Bearer <token>", and a
// token that fails verification, each with its own message.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return domainerrors.ErrTokenMalformed
		}

		claims, err := m.tokenSvc.Verify(parts[1])
		if err != nil {
			return err
		}

		// Make the identity available to handlers and to the service layer.
		c.Set(ContextKeyIdentity, claims)

		return next(c)
	}
}

// IdentityFrom extracts the authenticated identity set by Authenticate.
func IdentityFrom(c echo.Context) (*service.IdentityClaims, bool) {
	claims, ok := c.Get(ContextKeyIdentity).(*service.IdentityClaims)

	return claims, ok
}
