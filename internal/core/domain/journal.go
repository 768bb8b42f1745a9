package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied to blank draft fields before posting.
const (
	DefaultEntryReference   = "MANUAL"
	DefaultEntryDescription = "Manual entry"
)

// EntryLine is one account-level posting inside a journal entry.
// Debit and Credit are summed independently; both may be non-zero.
type EntryLine struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

// JournalEntry is a balanced set of debit/credit lines recorded as one
// bookkeeping transaction. Entries are immutable once posted.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`
	TenantID    string      `json:"tenantID"`
	Date        time.Time   `json:"date"`
	Reference   string      `json:"reference"`
	Description string      `json:"description"`
	Lines       []EntryLine `json:"lines"`
	// ReversalOf links an offsetting entry to the entry it cancels.
	ReversalOf string    `json:"reversalOf,omitempty"`
	PostedAt   time.Time `json:"postedAt"`
	PostedBy   string    `json:"postedBy"`
}

// Totals returns the summed debit and credit columns of the entry.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range e.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// Clone returns a copy of the entry that shares no line storage with e.
func (e JournalEntry) Clone() JournalEntry {
	out := e
	if e.Lines != nil {
		out.Lines = make([]EntryLine, len(e.Lines))
		copy(out.Lines, e.Lines)
	}
	return out
}
