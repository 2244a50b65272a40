package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateToken("user-1", "ADMIN")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.True(t, IsAdmin(claims))
	assert.True(t, IsModeratorOrHigher(claims))
}

func TestParseTokenRejectsBadTokens(t *testing.T) {
	Configure("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = ParseToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission("ADMIN", PermUsersWrite))
	assert.True(t, HasPermission("MODERATOR", PermContestsWrite))
	assert.False(t, HasPermission("MODERATOR", PermUsersWrite))
	assert.False(t, HasPermission("USER", PermContestsWrite))
	assert.False(t, HasPermission("GUEST", PermContestsWrite))
}
