package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

type receivablesService struct {
	BaseService
	repo portsrepo.ReceivablesRepositoryFacade
	now  func() time.Time
}

// NewReceivablesService creates the receivables service.
func NewReceivablesService(repo portsrepo.ReceivablesRepositoryFacade) *receivablesService {
	return &receivablesService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ReceivablesSvcFacade = (*receivablesService)(nil)

func (s *receivablesService) RecordInvoice(ctx context.Context, tenantID string, invoice domain.Invoice, userID string) (*domain.Invoice, error) {
	if strings.TrimSpace(invoice.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customerID is required", apperrors.ErrValidation)
	}
	if invoice.DueDate.Before(invoice.Date) {
		return nil, fmt.Errorf("%w: dueDate precedes invoice date", apperrors.ErrValidation)
	}
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = "INV-" + uuid.NewString()
	}
	invoice.TenantID = tenantID

	if err := s.repo.SaveInvoice(ctx, invoice, s.audit(userID)); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice recorded", slog.String("invoice_id", invoice.InvoiceID), slog.String("customer_id", invoice.CustomerID))
	return &invoice, nil
}

// RecordReceipt requires AppliedTo to name an invoice of the same customer.
func (s *receivablesService) RecordReceipt(ctx context.Context, tenantID string, receipt domain.Receipt, userID string) (*domain.Receipt, error) {
	if strings.TrimSpace(receipt.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customerID is required", apperrors.ErrValidation)
	}
	invoices, err := s.repo.ListInvoices(ctx, tenantID, receipt.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	known := false
	for _, inv := range invoices {
		if inv.InvoiceID == receipt.AppliedTo {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: invoice %s not found for customer %s", apperrors.ErrValidation, receipt.AppliedTo, receipt.CustomerID)
	}

	if receipt.ReceiptID == "" {
		receipt.ReceiptID = "RCP-" + uuid.NewString()
	}
	receipt.TenantID = tenantID

	if err := s.repo.SaveReceipt(ctx, receipt, s.audit(userID)); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("receipt_id", receipt.ReceiptID))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}
	s.LogInfo(ctx, "Receipt recorded", slog.String("receipt_id", receipt.ReceiptID), slog.String("applied_to", receipt.AppliedTo))
	return &receipt, nil
}

func (s *receivablesService) CustomerStatement(ctx context.Context, tenantID, customerID string) (*domain.CustomerStatement, error) {
	invoices, err := s.repo.ListInvoices(ctx, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	receipts, err := s.repo.ListReceipts(ctx, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receipts: %w", err)
	}
	stmt := ledger.CustomerStatement(customerID, ledger.BuildStatementLines(customerID, invoices, receipts))
	return &stmt, nil
}

// AgingReport buckets every open invoice of the tenant. A zero asOf means today.
func (s *receivablesService) AgingReport(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AgingBucket, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	invoices, err := s.repo.ListInvoices(ctx, tenantID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	receipts, err := s.repo.ListReceipts(ctx, tenantID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load receipts: %w", err)
	}
	return ledger.AgingBuckets(invoices, receipts, asOf), nil
}

func (s *receivablesService) audit(userID string) domain.AuditFields {
	return domain.AuditFields{CreatedAt: s.now(), CreatedBy: userID}
}
