package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func signedTokenIssuedAt(t *testing.T, issued time.Time, userID string) string {
	t.Helper()
	claims := UserClaims{
		UserID: userID,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	token, err := GenerateToken(id, "country-admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), claims.UserID)
	assert.Equal(t, "country-admin", claims.Role)
}

func TestTokenAcceptedWithinLifetime(t *testing.T) {
	// Issued six days ago: one day of the seven-day lifetime remains.
	token := signedTokenIssuedAt(t, time.Now().Add(-6*24*time.Hour), "abc")

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.UserID)
}

func TestTokenRejectedAfterExpiry(t *testing.T) {
	// Issued eight days ago: expired a day ago.
	token := signedTokenIssuedAt(t, time.Now().Add(-8*24*time.Hour), "abc")

	_, err := ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(primitive.NewObjectID(), "user")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
