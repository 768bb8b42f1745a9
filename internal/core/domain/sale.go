package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed POS transaction ready to be posted to the general ledger.
type Sale struct {
	SaleID      string          `json:"saleID"`
	TenantID    string          `json:"tenantID"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SalePosting reports what happened when a sale was posted to the ledger.
// Entry is nil when Posted is false.
type SalePosting struct {
	SaleID string        `json:"saleID"`
	Posted bool          `json:"posted"`
	Reason string        `json:"reason,omitempty"`
	Entry  *JournalEntry `json:"entry,omitempty"`
}
