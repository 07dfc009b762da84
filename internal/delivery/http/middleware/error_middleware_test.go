package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	domainerrors "plateful/internal/domain/errors"
)

func handleError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recipes/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := handleError(t, domainerrors.ErrRecipeNotFound)

	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, map[string]string{"error": "Recipe not found"}, body)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrTokenInvalid, "verify token")
	code, body := handleError(t, err)

	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, map[string]string{"error": "Invalid or expired token"}, body)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, map[string]string{"error": "Not Found"}, body)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	code, body := handleError(t, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, map[string]string{"error": "Internal server error"}, body)
}
