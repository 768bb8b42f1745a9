package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

const (
	saleRefPrefix  = "POS-"
	saleDescPrefix = "Sale Transaction: "
)

// SalesAccountCodes names the chart codes a sale is posted against.
type SalesAccountCodes struct {
	Cash    string
	Revenue string
}

// salesPostingService posts completed sales through the journal service. The
// entry id is derived from the sale id so a sale can only be posted once.
type salesPostingService struct {
	BaseService
	accounts portssvc.AccountReaderSvc
	journal  portssvc.JournalWriterSvc
	codes    SalesAccountCodes
}

// NewSalesPostingService creates the sale to GL posting service.
func NewSalesPostingService(accounts portssvc.AccountReaderSvc, journal portssvc.JournalWriterSvc, codes SalesAccountCodes) *salesPostingService {
	if codes.Cash == "" {
		codes.Cash = "1000"
	}
	if codes.Revenue == "" {
		codes.Revenue = "4000"
	}
	return &salesPostingService{accounts: accounts, journal: journal, codes: codes}
}

var _ portssvc.SalesPostingSvc = (*salesPostingService)(nil)

func (s *salesPostingService) PostSale(ctx context.Context, tenantID string, sale domain.Sale, userID string) (*domain.SalePosting, error) {
	if sale.SaleID == "" {
		return nil, fmt.Errorf("%w: saleID is required", apperrors.ErrValidation)
	}
	if !sale.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: sale total must be greater than zero", apperrors.ErrValidation)
	}

	accounts, err := s.accounts.ListAccounts(ctx, tenantID, "")
	if err != nil {
		return nil, err
	}
	cash, cashOK := findByCode(accounts, s.codes.Cash)
	revenue, revenueOK := findByCode(accounts, s.codes.Revenue)
	if !cashOK || !revenueOK {
		reason := fmt.Sprintf("accounts %s and %s must both exist", s.codes.Cash, s.codes.Revenue)
		s.LogInfo(ctx, "Sale not posted", slog.String("sale_id", sale.SaleID), slog.String("reason", reason))
		return &domain.SalePosting{SaleID: sale.SaleID, Posted: false, Reason: reason}, nil
	}

	draft := domain.JournalEntry{
		EntryID:     saleRefPrefix + sale.SaleID,
		Date:        sale.CreatedAt,
		Reference:   saleRefPrefix + sale.SaleID,
		Description: saleDescPrefix + sale.SaleID,
		Lines: []domain.EntryLine{
			{AccountID: cash.AccountID, Debit: sale.TotalAmount},
			{AccountID: revenue.AccountID, Credit: sale.TotalAmount},
		},
	}
	entry, err := s.journal.PostEntry(ctx, tenantID, draft, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to post sale %s: %w", sale.SaleID, err)
	}
	return &domain.SalePosting{SaleID: sale.SaleID, Posted: true, Entry: entry}, nil
}

func findByCode(accounts []domain.Account, code string) (domain.Account, bool) {
	for _, acc := range accounts {
		if acc.Code == code {
			return acc, true
		}
	}
	return domain.Account{}, false
}
