package dto

import "github.com/SscSPs/erp_ledger/internal/core/domain"

// LedgerParams defines query parameters for the ledger view.
type LedgerParams struct {
	AccountID string `form:"accountID"`
}

// LedgerResponse is the flattened ledger.
type LedgerResponse struct {
	Lines []domain.LedgerLine `json:"lines"`
}
