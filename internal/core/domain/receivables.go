package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a customer invoice.
type InvoiceStatus string

const (
	InvoiceSent     InvoiceStatus = "sent"
	InvoicePartPaid InvoiceStatus = "part-paid"
	InvoiceOverdue  InvoiceStatus = "overdue"
	InvoicePaid     InvoiceStatus = "paid"
)

// Customer is a receivables counterparty.
type Customer struct {
	CustomerID string `json:"customerID"`
	TenantID   string `json:"tenantID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// Invoice is an amount billed to a customer, due on DueDate.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"`
	TenantID   string          `json:"tenantID"`
	CustomerID string          `json:"customerID"`
	Date       time.Time       `json:"date"`
	DueDate    time.Time       `json:"dueDate"`
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
}

// Receipt is a customer payment applied against an invoice.
type Receipt struct {
	ReceiptID  string          `json:"receiptID"`
	TenantID   string          `json:"tenantID"`
	CustomerID string          `json:"customerID"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	AppliedTo  string          `json:"appliedTo"` // InvoiceID
}

// StatementLineType distinguishes invoice and receipt rows on a statement.
type StatementLineType string

const (
	StatementInvoice StatementLineType = "Invoice"
	StatementReceipt StatementLineType = "Receipt"
)

// StatementLine is one row of a customer statement. Amount is signed as
// supplied: invoices positive, receipts negative.
type StatementLine struct {
	Date      time.Time         `json:"date"`
	Type      StatementLineType `json:"type"`
	Reference string            `json:"reference"`
	Amount    decimal.Decimal   `json:"amount"`
}

// StatementRow is a statement line with the balance after applying it.
type StatementRow struct {
	StatementLine
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// CustomerStatement is the date-ordered activity of one customer.
type CustomerStatement struct {
	CustomerID     string          `json:"customerID"`
	Lines          []StatementRow  `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// AgingBucketName names a days-past-due range.
type AgingBucketName string

const (
	BucketCurrent AgingBucketName = "Current"
	Bucket1To30   AgingBucketName = "1-30 days"
	Bucket31To60  AgingBucketName = "31-60 days"
	Bucket61To90  AgingBucketName = "61-90 days"
	BucketOver90  AgingBucketName = "90+ days"
)

// AgingBucketNames lists the buckets in report order.
var AgingBucketNames = []AgingBucketName{BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, BucketOver90}

// AgingBucket is a named days-past-due range with its summed outstanding amount.
type AgingBucket struct {
	Bucket AgingBucketName `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
}
