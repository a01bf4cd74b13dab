package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-do-not-use"

func TestCreateAndVerifyAccessToken(t *testing.T) {
	token, err := CreateAccessToken(42, testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	token, err := CreateAccessToken(1, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	token, err := CreateAccessToken(1, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenMalformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c", "header.payload"} {
		_, err := VerifyAccessToken(tok, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q should be rejected", tok)
	}
}

func TestVerifyAccessTokenMissingUserID(t *testing.T) {
	// A structurally valid token without a user_id claim is still rejected.
	token, err := CreateAccessToken(0, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
