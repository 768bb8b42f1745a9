package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the invoices table row.
type Invoice struct {
	InvoiceID  string          `db:"invoice_id"`
	TenantID   string          `db:"tenant_id"`
	CustomerID string          `db:"customer_id"`
	IssueDate  time.Time       `db:"issue_date"`
	DueDate    time.Time       `db:"due_date"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	AuditFields
}

// Receipt is the receipts table row.
type Receipt struct {
	ReceiptID   string          `db:"receipt_id"`
	TenantID    string          `db:"tenant_id"`
	CustomerID  string          `db:"customer_id"`
	ReceiptDate time.Time       `db:"receipt_date"`
	Amount      decimal.Decimal `db:"amount"`
	Method      string          `db:"method"`
	AppliedTo   string          `db:"applied_to"`
	AuditFields
}
