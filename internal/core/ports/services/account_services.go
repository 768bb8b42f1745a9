package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// AccountReaderSvc defines read operations on a tenant's chart of accounts
type AccountReaderSvc interface {
	// ListAccounts filters accounts by name, code or type, case-insensitively.
	ListAccounts(ctx context.Context, tenantID, filter string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations on a tenant's chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	// SetupChartOfAccounts seeds the industry template, skipping codes that
	// already exist, and returns the accounts it created.
	SetupChartOfAccounts(ctx context.Context, tenantID, industry, userID string) ([]domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
