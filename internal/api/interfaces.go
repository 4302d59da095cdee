package api

import "time"

type JWTServiceI interface {
	CreateToken(userID int64, ttl time.Duration) (string, error)
	ParseToken(tokenString string) (int64, error)
}
