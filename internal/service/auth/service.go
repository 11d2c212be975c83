package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/chamcong-app/chamcong-backend-go/internal/domain/auth"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/jwt"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service
	pinHash    string
}

func NewAuthService(jwtService jwt.Service, pinHash string) auth.AuthService {
	return &AuthServiceImpl{
		jwtService: jwtService,
		pinHash:    pinHash,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.pinHash), []byte(req.PIN)); err != nil {
		return auth.TokenResponse{}, nil, auth.ErrInvalidPIN
	}

	return a.issueTokens()
}

// Refresh implements auth.AuthService. Refresh tokens rotate: the presented
// token is revoked once a replacement is issued.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, *http.Cookie, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, nil, auth.ErrInvalidToken
	}
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, nil, auth.ErrTokenRevoked
	}
	if err := a.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.TokenResponse{}, nil, auth.ErrTokenExpired
		}
		return auth.TokenResponse{}, nil, auth.ErrInvalidToken
	}

	resp, cookie, err := a.issueTokens()
	if err != nil {
		return auth.TokenResponse{}, nil, err
	}
	a.jwtService.RevokeToken(refreshToken)
	return resp, cookie, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens() (auth.TokenResponse, *http.Cookie, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken()
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
	}, a.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt), nil
}
