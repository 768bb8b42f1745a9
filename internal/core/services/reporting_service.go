package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	books *Books
}

// NewReportingService creates a reporting service reading from books.
func NewReportingService(books *Books) *reportingService {
	return &reportingService{books: books}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalanceReport, error) {
	rows, err := s.trialBalanceRows(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	debit, credit := ledger.TrialBalanceTotals(rows)
	return &domain.TrialBalanceReport{
		Rows:        rows,
		TotalDebit:  debit,
		TotalCredit: credit,
	}, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, tenantID string) (*domain.PAndLReport, error) {
	rows, err := s.trialBalanceRows(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	report, err := accounting.ProfitAndLoss(rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to build profit and loss")
		return nil, fmt.Errorf("failed to build profit and loss: %w", err)
	}
	return &report, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, tenantID string) (*domain.BalanceSheetReport, error) {
	rows, err := s.trialBalanceRows(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	report, err := accounting.BalanceSheet(rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance sheet")
		return nil, fmt.Errorf("failed to build balance sheet: %w", err)
	}
	return &report, nil
}

func (s *reportingService) trialBalanceRows(ctx context.Context, tenantID string) ([]domain.TrialBalanceRow, error) {
	book, err := s.books.get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return book.engine.TrialBalance(), nil
}
