package tokens

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/planandgo/internal/tokens/tokenstest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestInspect_SignedAccessToken(t *testing.T) {
	t.Parallel()

	tok, err := tokenstest.Generate("user-123", "alice", []byte("super-secret"), time.Hour)
	require.NoError(t, err)

	claims, err := Inspect(tok)
	require.NoError(t, err)
	require.Equal(t, UserID("user-123"), claims.UserID)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, "access", claims.TokenType)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestInspect_ExpiredTokenIsStillReadable(t *testing.T) {
	t.Parallel()

	tok, err := tokenstest.Generate("u1", "", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	claims, err := Inspect(tok)
	require.NoError(t, err)
	require.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestInspect_NumericUserID(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    42,
	}).SignedString([]byte("other-key"))
	require.NoError(t, err)

	claims, err := Inspect(tok)
	require.NoError(t, err)
	require.Equal(t, UserID("42"), claims.UserID)
	require.Nil(t, claims.ExpiresAt)
}

func TestInspect_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := Inspect(tok)
		require.Error(t, err, tok)
	}
}

func TestInspect_BadUserID(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": map[string]any{"nested": true},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = Inspect(tok)
	require.Error(t, err)
}
