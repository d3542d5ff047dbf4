package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.Issue(userID, "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)

	subject, err := claims.UserUUID()
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("test-secret")
	verifier := NewJWTService("other-secret")

	token, err := issuer.Issue(uuid.New(), "test@example.com")
	assert.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	// Sign a token that expired an hour ago with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: uuid.New().String(),
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-6 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	claims, err := service.Verify(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := NewJWTService("test-secret")

	claims, err := service.Verify("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
