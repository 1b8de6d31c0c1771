package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	id := uuid.New()

	issued, err := tm.Issue(id)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), issued.ExpiresAt, 5*time.Second)

	got, err := tm.Parse(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	issued, err := tm.Issue(uuid.New())
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(issued.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenInvalid(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenManager("other-secret", 0)
	issued, err := other.Issue(uuid.New())
	require.NoError(t, err)
	_, err = tm.Parse(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = tm.Parse(noSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = tm.Parse(noExpiry)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("  John@Example.COM "))
}
