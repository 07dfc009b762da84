package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/service"
	mockservice "plateful/internal/mocks/service"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireAuthError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	require.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	require.Equal(t, want.Message(), appErr.Message())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	})

	err := handler(newAuthTestContext(t, ""))
	requireAuthError(t, err, domainerrors.ErrTokenMissing)
	require.Equal(t, "Authentication token is missing", domainerrors.ErrTokenMissing.Message())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with a malformed header")
		return nil
	})

	headers := []string{
		"some-token",
		"Basic abc123",
		"bearer some-token",
		"Bearer ",
	}
	for _, header := range headers {
		err := handler(newAuthTestContext(t, header))
		requireAuthError(t, err, domainerrors.ErrTokenMalformed)
	}
	require.Equal(t, "Invalid authorization header format. Expected: Bearer <token>", domainerrors.ErrTokenMalformed.Message())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad-token").Return(nil, domainerrors.ErrTokenInvalid)
	mw := NewAuthMiddleware(tokenSvc)

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid token")
		return nil
	})

	err := handler(newAuthTestContext(t, "Bearer bad-token"))
	requireAuthError(t, err, domainerrors.ErrTokenInvalid)
	require.Equal(t, "Invalid or expired token", domainerrors.ErrTokenInvalid.Message())
}

func TestAuthMiddleware_ValidTokenAttachesIdentity(t *testing.T) {
	claims := &service.IdentityClaims{UserID: 7, Username: "alice", Email: "alice@example.com"}
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token").Return(claims, nil)
	mw := NewAuthMiddleware(tokenSvc)

	var seen *service.IdentityClaims
	handler := mw.Authenticate(func(c echo.Context) error {
		got, ok := IdentityFrom(c)
		require.True(t, ok)
		seen = got
		return c.NoContent(http.StatusOK)
	})

	err := handler(newAuthTestContext(t, "Bearer good-token"))
	require.NoError(t, err)
	require.Equal(t, claims, seen)
}
