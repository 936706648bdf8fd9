package auth

import (
	"testing"
	"time"

	"github.com/nitpydev/gyanith24-cms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)
	verifier := NewJWTVerifier(secret)

	identity := &domain.Identity{ID: "uid-123", Email: "admin@fest.org", Name: "Admin"}
	token, err := issuer.Issue(identity, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.Email, got.Email)
	assert.Equal(t, identity.Name, got.Name)
}

func TestJWTVerifier_RejectsBadTokens(t *testing.T) {
	issuer := NewJWTIssuer("secret-a")
	verifier := NewJWTVerifier("secret-b")

	identity := &domain.Identity{ID: "uid-123", Email: "admin@fest.org"}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := issuer.Issue(identity, time.Hour)
		require.NoError(t, err)
		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := issuer.Issue(identity, -time.Minute)
		require.NoError(t, err)
		_, err = NewJWTVerifier("secret-a").Verify(token)
		require.Error(t, err)
	})
}
