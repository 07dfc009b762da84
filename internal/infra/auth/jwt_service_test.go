package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plateful/config"
	domainerrors "plateful/internal/domain/errors"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}
	}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)

	token, err := svc.Issue(42, "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)

	// Default lifetime is 24 hours.
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := &jwtService{
		secret: []byte("test-secret-key"),
		ttl:    time.Hour,
		now:    func() time.Time { return issuedAt },
	}

	token, err := svc.Issue(7, "bob", "bob@example.com")
	require.NoError(t, err)

	// Still valid just before expiry.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	// Invalid at the exact expiry instant.
	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.Verify(token)
	assertTokenInvalid(t, err)

	// Invalid after expiry.
	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assertTokenInvalid(t, err)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(1, "carol", "carol@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assertTokenInvalid(t, err)
}

func TestJWTService_VerifyGarbageToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := svc.Verify(token)
		assertTokenInvalid(t, err)
	}
}

func TestJWTService_VerifyRejectsUnsignedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"user_id": float64(9),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assertTokenInvalid(t, err)
}

func TestJWTService_VerifyMissingUserIDClaim(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"username": "dave",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assertTokenInvalid(t, err)
}

func assertTokenInvalid(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, domainerrors.ErrTokenInvalid.Message(), appErr.Message())
}
