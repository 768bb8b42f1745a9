package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

// ReceivablesRepository stores invoices and receipts.
type ReceivablesRepository struct {
	db *sql.DB
}

var _ portsrepo.ReceivablesRepositoryFacade = (*ReceivablesRepository)(nil)

func (r *ReceivablesRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, audit domain.AuditFields) error {
	m := mapping.ToModelInvoice(invoice, audit)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (invoice_id, tenant_id, customer_id, issue_date, due_date, amount, status, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.InvoiceID, m.TenantID, m.CustomerID, formatTime(m.IssueDate), formatTime(m.DueDate),
		m.Amount.String(), m.Status, formatTime(m.CreatedAt), m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "invoice "+m.InvoiceID)
	}
	return nil
}

func (r *ReceivablesRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt, audit domain.AuditFields) error {
	m := mapping.ToModelReceipt(receipt, audit)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO receipts (receipt_id, tenant_id, customer_id, receipt_date, amount, method, applied_to, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ReceiptID, m.TenantID, m.CustomerID, formatTime(m.ReceiptDate),
		m.Amount.String(), m.Method, m.AppliedTo, formatTime(m.CreatedAt), m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "receipt "+m.ReceiptID)
	}
	return nil
}

func (r *ReceivablesRepository) ListInvoices(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT invoice_id, tenant_id, customer_id, issue_date, due_date, amount, status, created_at, created_by
		FROM invoices
		WHERE tenant_id = ? AND (? = '' OR customer_id = ?)
		ORDER BY rowid`, tenantID, customerID, customerID)
	if err != nil {
		return nil, mapError(err, "list invoices")
	}
	defer rows.Close()

	out := make([]domain.Invoice, 0)
	for rows.Next() {
		var (
			m                      models.Invoice
			issued, due, createdAt string
		)
		if err := rows.Scan(&m.InvoiceID, &m.TenantID, &m.CustomerID, &issued, &due, &m.Amount, &m.Status, &createdAt, &m.CreatedBy); err != nil {
			return nil, mapError(err, "scan invoice")
		}
		if m.IssueDate, err = parseTime(issued); err != nil {
			return nil, mapError(err, "parse issue_date")
		}
		if m.DueDate, err = parseTime(due); err != nil {
			return nil, mapError(err, "parse due_date")
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, mapError(err, "parse invoice created_at")
		}
		out = append(out, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate invoices")
	}
	return out, nil
}

func (r *ReceivablesRepository) ListReceipts(ctx context.Context, tenantID, customerID string) ([]domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT receipt_id, tenant_id, customer_id, receipt_date, amount, method, applied_to, created_at, created_by
		FROM receipts
		WHERE tenant_id = ? AND (? = '' OR customer_id = ?)
		ORDER BY rowid`, tenantID, customerID, customerID)
	if err != nil {
		return nil, mapError(err, "list receipts")
	}
	defer rows.Close()

	out := make([]domain.Receipt, 0)
	for rows.Next() {
		var (
			m                   models.Receipt
			received, createdAt string
		)
		if err := rows.Scan(&m.ReceiptID, &m.TenantID, &m.CustomerID, &received, &m.Amount, &m.Method, &m.AppliedTo, &createdAt, &m.CreatedBy); err != nil {
			return nil, mapError(err, "scan receipt")
		}
		if m.ReceiptDate, err = parseTime(received); err != nil {
			return nil, mapError(err, "parse receipt_date")
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, mapError(err, "parse receipt created_at")
		}
		out = append(out, mapping.ToDomainReceipt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate receipts")
	}
	return out, nil
}
