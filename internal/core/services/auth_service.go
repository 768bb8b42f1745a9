package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/utils"
)

// AuthConfig is the operator identity and token settings used by login.
type AuthConfig struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	JWTIssuer    string
	JWTExpiry    time.Duration
}

type authService struct {
	BaseService
	cfg AuthConfig
}

// NewAuthService creates the operator login service.
func NewAuthService(cfg AuthConfig) *authService {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) == 1
	// bcrypt runs regardless of the username match.
	passMatch := utils.CheckPasswordHash(req.Password, s.cfg.PasswordHash)
	if !userMatch || !passMatch {
		s.LogInfo(ctx, "Login failed", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.Username, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate JWT")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
