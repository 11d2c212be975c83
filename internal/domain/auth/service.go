package auth

import (
	"context"
	"net/http"
)

// AuthService defines the single-user device authentication flow: a PIN
// exchange for an access token plus a refresh-token cookie.
type AuthService interface {
	// Login verifies the PIN and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, *http.Cookie, error)

	// Refresh exchanges a valid refresh token for a fresh access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, *http.Cookie, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
