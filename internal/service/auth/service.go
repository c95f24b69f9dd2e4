package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/domain/auth"
	"github.com/D4rK14/Control-de-asistencia/internal/domain/user"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/accesstime"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// QR sessions cover a full shift; password sessions use the configured
// access token expiration. Both are still cut at the next 22:00.
const qrSessionMax = 8 * time.Hour

type AuthServiceImpl struct {
	user.UserRepository
	jwtService         jwt.Service
	clock              clock.Clock
	passwordSessionMax time.Duration
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, clk clock.Clock, accessExpiration time.Duration) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		jwtService:         jwtService,
		clock:              clk,
		passwordSessionMax: accessExpiration,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.UserRepository.GetByRUT(ctx, req.RUT)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(u, a.passwordSessionMax)
}

// LoginWithQR implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithQR(ctx context.Context, req auth.QRLoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.UserRepository.GetByQRSecret(ctx, req.QRCodeContent)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidQRCode
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	return a.issueTokens(u, qrSessionMax)
}

// issueTokens runs the checks shared by both login methods and issues
// the token pair. The access token expires at min(maxLifetime, next
// 22:00) so no session survives into the blocked window.
func (a *AuthServiceImpl) issueTokens(u user.User, maxLifetime time.Duration) (auth.LoginResponse, error) {
	if !u.Active() {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	now := a.clock.Now()
	if accesstime.IsBlocked(now) {
		slog.Info("Intento de login fuera de horario permitido", "user_id", u.ID)
		return auth.LoginResponse{}, auth.ErrAccessBlocked
	}

	lifetime := maxLifetime
	if untilBlock := accesstime.UntilNextBlock(now); untilBlock < lifetime {
		lifetime = untilBlock
	}
	accessExpiresAt := now.Add(lifetime).Unix()

	accessToken, err := a.jwtService.GenerateAccessToken(u.ID, u.RUT, u.Role, accessExpiresAt)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: accessExpiresAt,
		Role:            string(u.Role),
	}, nil
}
