package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is the flattened view of one EntryLine decorated with its
// parent entry. It is always derived, never stored.
type LedgerLine struct {
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}
