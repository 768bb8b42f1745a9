package ledger

import (
	"sort"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildStatementLines converts a customer's invoices and receipts into
// statement lines. Invoices are positive, receipts negative. Items belonging
// to other customers are skipped. The result is in input order, invoices
// first; CustomerStatement orders it by date.
func BuildStatementLines(customerID string, invoices []domain.Invoice, receipts []domain.Receipt) []domain.StatementLine {
	lines := make([]domain.StatementLine, 0, len(invoices)+len(receipts))
	for _, inv := range invoices {
		if inv.CustomerID != customerID {
			continue
		}
		lines = append(lines, domain.StatementLine{
			Date:      inv.Date,
			Type:      domain.StatementInvoice,
			Reference: inv.InvoiceID,
			Amount:    inv.Amount,
		})
	}
	for _, rcp := range receipts {
		if rcp.CustomerID != customerID {
			continue
		}
		lines = append(lines, domain.StatementLine{
			Date:      rcp.Date,
			Type:      domain.StatementReceipt,
			Reference: rcp.ReceiptID,
			Amount:    rcp.Amount.Neg(),
		})
	}
	return lines
}

// CustomerStatement sorts lines by date, keeping input order for equal dates,
// and accumulates a running balance. Amounts are used as supplied.
func CustomerStatement(customerID string, lines []domain.StatementLine) domain.CustomerStatement {
	sorted := make([]domain.StatementLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	balance := decimal.Zero
	rows := make([]domain.StatementRow, 0, len(sorted))
	for _, line := range sorted {
		balance = balance.Add(line.Amount)
		rows = append(rows, domain.StatementRow{StatementLine: line, RunningBalance: balance})
	}
	return domain.CustomerStatement{
		CustomerID:     customerID,
		Lines:          rows,
		ClosingBalance: balance,
	}
}

// Outstanding is the invoice amount less every receipt applied to it.
func Outstanding(inv domain.Invoice, receipts []domain.Receipt) decimal.Decimal {
	out := inv.Amount
	for _, rcp := range receipts {
		if rcp.AppliedTo == inv.InvoiceID {
			out = out.Sub(rcp.Amount)
		}
	}
	return out
}

// DaysPastDue counts whole calendar days from dueDate to asOf, compared as
// UTC dates. It is negative for invoices not yet due.
func DaysPastDue(dueDate, asOf time.Time) int {
	due := truncateDay(dueDate)
	at := truncateDay(asOf)
	return int(at.Sub(due).Hours() / 24)
}

// BucketFor maps days past due to its aging bucket.
func BucketFor(daysPastDue int) domain.AgingBucketName {
	switch {
	case daysPastDue <= 0:
		return domain.BucketCurrent
	case daysPastDue <= 30:
		return domain.Bucket1To30
	case daysPastDue <= 60:
		return domain.Bucket31To60
	case daysPastDue < 90:
		return domain.Bucket61To90
	default:
		return domain.BucketOver90
	}
}

// AgingBuckets sums each invoice's outstanding amount into exactly one
// bucket chosen by its days past due at asOf. All five buckets are returned
// in report order, zero when empty. Paid or fully settled invoices are
// ignored.
func AgingBuckets(invoices []domain.Invoice, receipts []domain.Receipt, asOf time.Time) []domain.AgingBucket {
	totals := make(map[domain.AgingBucketName]decimal.Decimal, len(domain.AgingBucketNames))
	for _, inv := range invoices {
		if inv.Status == domain.InvoicePaid {
			continue
		}
		outstanding := Outstanding(inv, receipts)
		if !outstanding.IsPositive() {
			continue
		}
		name := BucketFor(DaysPastDue(inv.DueDate, asOf))
		totals[name] = totals[name].Add(outstanding)
	}

	out := make([]domain.AgingBucket, 0, len(domain.AgingBucketNames))
	for _, name := range domain.AgingBucketNames {
		amount, ok := totals[name]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, domain.AgingBucket{Bucket: name, Amount: amount})
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
