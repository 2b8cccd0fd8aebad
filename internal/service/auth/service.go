package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/opsgrid/workforce-backend-go/internal/domain/auth"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/jwt"
	"github.com/opsgrid/workforce-backend-go/internal/pkg/oauth"
)

type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	GoogleRedirectURL(userAgent string) (string, error)
	GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error)
	Logout(refreshToken string)
}

type authService struct {
	users        user.UserRepository
	jwtService   jwt.Service
	googleOAuth  oauth.GoogleService
	oauthEnabled bool
}

func NewAuthService(users user.UserRepository, jwtService jwt.Service, googleOAuth oauth.GoogleService, oauthEnabled bool) AuthService {
	return &authService{
		users:        users,
		jwtService:   jwtService,
		googleOAuth:  googleOAuth,
		oauthEnabled: oauthEnabled,
	}
}

// Login verifies email/password and issues an access + refresh token pair.
// Password and lookup failures both map to ErrInvalidCredentials so the
// response does not leak which emails exist.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	account, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if account.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

func (s *authService) GoogleRedirectURL(userAgent string) (string, error) {
	if !s.oauthEnabled {
		return "", auth.ErrOAuthDisabled
	}

	state := s.googleOAuth.GenerateState(userAgent)
	return s.googleOAuth.RedirectURL(state), nil
}

// GoogleCallback exchanges the OAuth code, links the Google account to an
// existing user by verified email, and issues tokens.
func (s *authService) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	if !s.oauthEnabled {
		return auth.TokenResponse{}, auth.ErrOAuthDisabled
	}

	token, err := s.googleOAuth.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify oauth code: %w", err)
	}

	info, err := s.googleOAuth.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	account, err := s.users.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(account)
}

// Refresh rotates the token pair. The presented refresh token is revoked so
// it cannot be replayed.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(account)
}

func (s *authService) Logout(refreshToken string) {
	s.jwtService.RevokeToken(refreshToken)
}

func (s *authService) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Role:         string(account.Role),
	}, nil
}
