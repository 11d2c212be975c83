package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidPIN   = errors.New("invalid PIN")
	ErrInvalidToken = errors.New("invalid or missing token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)
