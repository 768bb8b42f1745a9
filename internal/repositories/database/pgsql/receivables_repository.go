package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceivablesRepository struct {
	BaseRepository
}

func newPgxReceivablesRepository(pool *pgxpool.Pool) *PgxReceivablesRepository {
	return &PgxReceivablesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceivablesRepositoryFacade = (*PgxReceivablesRepository)(nil)

func (r *PgxReceivablesRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, audit domain.AuditFields) error {
	m := mapping.ToModelInvoice(invoice, audit)
	query := `
		INSERT INTO invoices (invoice_id, tenant_id, customer_id, issue_date, due_date, amount, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.TenantID, m.CustomerID, m.IssueDate, m.DueDate, m.Amount, m.Status, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "invoice "+m.InvoiceID)
	}
	return nil
}

func (r *PgxReceivablesRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt, audit domain.AuditFields) error {
	m := mapping.ToModelReceipt(receipt, audit)
	query := `
		INSERT INTO receipts (receipt_id, tenant_id, customer_id, receipt_date, amount, method, applied_to, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID, m.TenantID, m.CustomerID, m.ReceiptDate, m.Amount, m.Method, m.AppliedTo, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return mapError(err, "receipt "+m.ReceiptID)
	}
	return nil
}

// ListInvoices returns invoices in insertion order. An empty customerID
// matches every customer.
func (r *PgxReceivablesRepository) ListInvoices(ctx context.Context, tenantID, customerID string) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, tenant_id, customer_id, issue_date, due_date, amount, status, created_at, created_by
		FROM invoices
		WHERE tenant_id = $1 AND ($2 = '' OR customer_id = $2)
		ORDER BY created_at, invoice_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, mapError(err, "list invoices")
	}
	defer rows.Close()

	out := make([]domain.Invoice, 0)
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID, &m.TenantID, &m.CustomerID, &m.IssueDate, &m.DueDate, &m.Amount, &m.Status, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, mapError(err, "scan invoice")
		}
		out = append(out, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate invoices")
	}
	return out, nil
}

func (r *PgxReceivablesRepository) ListReceipts(ctx context.Context, tenantID, customerID string) ([]domain.Receipt, error) {
	query := `
		SELECT receipt_id, tenant_id, customer_id, receipt_date, amount, method, applied_to, created_at, created_by
		FROM receipts
		WHERE tenant_id = $1 AND ($2 = '' OR customer_id = $2)
		ORDER BY created_at, receipt_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, mapError(err, "list receipts")
	}
	defer rows.Close()

	out := make([]domain.Receipt, 0)
	for rows.Next() {
		var m models.Receipt
		if err := rows.Scan(
			&m.ReceiptID, &m.TenantID, &m.CustomerID, &m.ReceiptDate, &m.Amount, &m.Method, &m.AppliedTo, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, mapError(err, "scan receipt")
		}
		out = append(out, mapping.ToDomainReceipt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate receipts")
	}
	return out, nil
}
