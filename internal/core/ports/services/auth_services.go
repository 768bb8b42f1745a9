package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/dto"
)

// AuthSvc authenticates the operator and issues access tokens.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
