package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosalon/internal/models"
)

const testSecret = "test-secret"

func testUser() *models.User {
	return &models.User{ID: 7, Email: "manager@autosalon.ru", Role: models.RoleManager}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, expiresAt, err := NewAccessToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAccessToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "manager@autosalon.ru", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, _, err := NewAccessToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	// токен с истёкшим сроком собираем вручную
	now := time.Now()
	c := Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, token)
	assert.Error(t, err)
}

func TestAccessTokenRejectsNonHMAC(t *testing.T) {
	// alg=none не должен проходить проверку
	c := Claims{UserID: 7, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, token)
	assert.Error(t, err)
}

func TestAccessTokenValidation(t *testing.T) {
	_, _, err := NewAccessToken("", testUser(), time.Hour)
	assert.Error(t, err)

	_, _, err = NewAccessToken(testSecret, nil, time.Hour)
	assert.Error(t, err)

	_, _, err = NewAccessToken(testSecret, &models.User{}, time.Hour)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := NewRefreshToken("refresh-secret", 42, time.Hour)
	require.NoError(t, err)

	claims, err := ParseRefreshToken("refresh-secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, fmt.Sprint(42), claims.Subject)

	// refresh-токен не принимается на секрете access-токенов
	_, err = ParseRefreshToken(testSecret, token)
	assert.Error(t, err)
}
