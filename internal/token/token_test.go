package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("")
	require.Error(t, err)
	_, err = NewIssuer("   ")
	require.Error(t, err)
}

func TestIssueEncodesSubjectAndWindow(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	issuedAt := time.Now().Truncate(time.Second)
	expiresAt := issuedAt.Add(8 * time.Hour)
	signed, err := issuer.Issue("user-uuid", issuedAt, expiresAt)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "user-uuid", claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestIssueIsTamperEvident(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	signed, err := issuer.Issue("user-uuid", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	require.Error(t, err)
}

func TestIssueProducesUniqueTokens(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	// Identical subject and window in the same instant must still yield
	// distinct tokens, since the token doubles as the session lookup key.
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(8 * time.Hour)
	first, err := issuer.Issue("user-uuid", issuedAt, expiresAt)
	require.NoError(t, err)
	second, err := issuer.Issue("user-uuid", issuedAt, expiresAt)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
