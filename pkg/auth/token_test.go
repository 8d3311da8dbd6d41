package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) *Claims {
	return &Claims{
		Email: "candidate@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateToken_Valid(t *testing.T) {
	userID := uuid.New()
	v := NewTokenVerifier(testSecret)

	claims, err := v.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String())))
	require.NoError(t, err)

	assert.Equal(t, "candidate@example.com", claims.Email)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateToken_Rejections(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	expired := validClaims(uuid.NewString())
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims(uuid.NewString())
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims(uuid.NewString()))},
		{name: "wrong algorithm", token: sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(uuid.NewString()))},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "missing expiry", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "missing subject", token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateToken_NoSecret(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(uuid.NewString()))
	_, err := NewTokenVerifier("").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_UserID_NotUUID(t *testing.T) {
	c := validClaims("user-123")
	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
