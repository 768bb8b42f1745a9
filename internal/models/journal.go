package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the journal_entries table row. Lines live in journal_lines.
type JournalEntry struct {
	EntryID     string         `db:"entry_id"`
	TenantID    string         `db:"tenant_id"`
	EntryDate   time.Time      `db:"entry_date"`
	Reference   string         `db:"reference"`
	Description string         `db:"description"`
	ReversalOf  sql.NullString `db:"reversal_of"`
	Seq         int64          `db:"seq"` // store order
	PostedAt    time.Time      `db:"posted_at"`
	PostedBy    string         `db:"posted_by"`
}

// JournalLine is the journal_lines table row.
type JournalLine struct {
	EntryID   string          `db:"entry_id"`
	LineNo    int             `db:"line_no"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Memo      string          `db:"memo"`
}
