package services

import (
	"testing"
	"time"

	"github.com/estateregistry-api/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("expiry is fifteen days out", func(t *testing.T) {
		assert.WithinDuration(t, time.Now().Add(15*24*time.Hour), expiresAt, time.Minute)
	})

	t.Run("valid token yields the subject", func(t *testing.T) {
		claims, err := ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "another-secret")
		_, err := ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestValidateToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := dto.TokenClaims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ValidateToken(expired)
		assert.Error(t, err)
	})

	t.Run("missing secret is an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := ValidateToken("anything")
		assert.Error(t, err)
	})
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := GenerateToken("user-123")
	assert.Error(t, err)
}
