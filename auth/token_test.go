package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	identity := Identity{UID: "u1", Email: "user" + domain, EmailVerified: true}

	token, err := IssueToken("secret", identity, true)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UID)
	require.Equal(t, "user"+domain, claims.Email)
	require.True(t, claims.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", Identity{UID: "u1"}, false)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	require.Error(t, err)
}
