package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReceivablesReader defines read operations for invoices and receipts.
// An empty customerID selects every customer of the tenant.
type ReceivablesReader interface {
	ListInvoices(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error)
	ListReceipts(ctx context.Context, tenantID, customerID string) ([]domain.Receipt, error)
}

// ReceivablesWriter defines write operations for invoices and receipts
type ReceivablesWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice, audit domain.AuditFields) error
	SaveReceipt(ctx context.Context, receipt domain.Receipt, audit domain.AuditFields) error
}

// ReceivablesRepositoryFacade combines all receivables repository interfaces
type ReceivablesRepositoryFacade interface {
	ReceivablesReader
	ReceivablesWriter
}
