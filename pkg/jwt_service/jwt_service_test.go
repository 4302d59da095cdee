package jwtservice_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	jwtservice "github.com/limbo/wordbook/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return key
}

func TestCreateAndParse(t *testing.T) {
	key := newKey(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	srv := jwtservice.New(key, jwtservice.WithClock(clock))

	token, err := srv.CreateToken(7, 10*time.Minute)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		uid, err := srv.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), uid)
	})
	t.Run("expired", func(t *testing.T) {
		later := jwtservice.New(key, jwtservice.WithClock(func() time.Time { return now.Add(11 * time.Minute) }))
		_, err := later.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("signed by other key", func(t *testing.T) {
		other := jwtservice.New(newKey(t), jwtservice.WithClock(clock))
		_, err := other.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := srv.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

func TestParseRejectsBadClaims(t *testing.T) {
	key := newKey(t)
	srv := jwtservice.New(key)
	sign := func(claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	t.Run("no expiration", func(t *testing.T) {
		_, err := srv.ParseToken(sign(jwt.RegisteredClaims{Subject: "1"}))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("non numeric subject", func(t *testing.T) {
		_, err := srv.ParseToken(sign(jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("hmac token", func(t *testing.T) {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = srv.ParseToken(s)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
