package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingService derives financial reports from a tenant's book.
type ReportingService interface {
	TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context, tenantID string) (*domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, tenantID string) (*domain.BalanceSheetReport, error)
}
