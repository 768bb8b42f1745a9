package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReceivablesSvcFacade records customer invoices and receipts and derives
// statements and aging from them.
type ReceivablesSvcFacade interface {
	RecordInvoice(ctx context.Context, tenantID string, invoice domain.Invoice, userID string) (*domain.Invoice, error)
	RecordReceipt(ctx context.Context, tenantID string, receipt domain.Receipt, userID string) (*domain.Receipt, error)
	CustomerStatement(ctx context.Context, tenantID, customerID string) (*domain.CustomerStatement, error)
	AgingReport(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AgingBucket, error)
}
