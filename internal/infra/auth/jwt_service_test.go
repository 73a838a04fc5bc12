package auth

import (
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{Secret: secret, TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	user := &entity.User{
		ID:    7,
		Email: "ada@example.com",
		Role:  entity.RoleSalesRep,
	}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, entity.RoleSalesRep, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_VerifyToken_NumericSubject(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	// Some issuers encode the subject as a JSON number instead of a string.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestJWTService_VerifyToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret", time.Hour)
	verifier := newTestTokenService(t, "other-secret", time.Hour)

	token, err := issuer.IssueToken(&entity.User{ID: 7})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
}

func TestJWTService_VerifyToken_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
}

func TestJWTService_VerifyToken_Garbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	_, err := svc.VerifyToken("not-a-token")
	require.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}
