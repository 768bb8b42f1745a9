package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

type (
	invoiceRow = models.Invoice
	receiptRow = models.Receipt
)

// ReceivablesRepository stores invoices and receipts per tenant.
type ReceivablesRepository struct {
	store *Store
}

var _ portsrepo.ReceivablesRepositoryFacade = (*ReceivablesRepository)(nil)

func (r *ReceivablesRepository) SaveInvoice(_ context.Context, invoice domain.Invoice, audit domain.AuditFields) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.invoices[invoice.TenantID]
	for _, row := range rows {
		if row.InvoiceID == invoice.InvoiceID {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrDuplicate, invoice.InvoiceID)
		}
	}
	r.store.invoices[invoice.TenantID] = append(rows, mapping.ToModelInvoice(invoice, audit))
	return nil
}

func (r *ReceivablesRepository) SaveReceipt(_ context.Context, receipt domain.Receipt, audit domain.AuditFields) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.receipts[receipt.TenantID]
	for _, row := range rows {
		if row.ReceiptID == receipt.ReceiptID {
			return fmt.Errorf("%w: receipt %s", apperrors.ErrDuplicate, receipt.ReceiptID)
		}
	}
	r.store.receipts[receipt.TenantID] = append(rows, mapping.ToModelReceipt(receipt, audit))
	return nil
}

func (r *ReceivablesRepository) ListInvoices(_ context.Context, tenantID, customerID string) ([]domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Invoice, 0)
	for _, row := range r.store.invoices[tenantID] {
		if customerID == "" || row.CustomerID == customerID {
			out = append(out, mapping.ToDomainInvoice(row))
		}
	}
	return out, nil
}

func (r *ReceivablesRepository) ListReceipts(_ context.Context, tenantID, customerID string) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Receipt, 0)
	for _, row := range r.store.receipts[tenantID] {
		if customerID == "" || row.CustomerID == customerID {
			out = append(out, mapping.ToDomainReceipt(row))
		}
	}
	return out, nil
}
