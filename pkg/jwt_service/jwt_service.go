package jwtservice

import (
	"crypto/ed25519"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
)

type Option func(*JWTService)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

type JWTService struct {
	key ed25519.PrivateKey
	now func() time.Time
}

func New(key ed25519.PrivateKey, opts ...Option) *JWTService {
	s := &JWTService{
		key: key,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateToken issues a token whose subject is the user id.
func (s *JWTService) CreateToken(userID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing token error: %w", err)
	}
	return signed, nil
}

// ParseToken verifies tokenString and returns the user id it was issued for.
func (s *JWTService) ParseToken(tokenString string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.key.Public(), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, err.Error())
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", errorvalues.ErrInvalidToken, claims.Subject)
	}
	return uid, nil
}
