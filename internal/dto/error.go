package dto

import "github.com/shopspring/decimal"

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LedgerErrorResponse is returned when an entry fails ledger validation.
type LedgerErrorResponse struct {
	Error       string          `json:"error"`
	Kind        string          `json:"kind"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Line        *int            `json:"line,omitempty"`
	AccountID   string          `json:"accountID,omitempty"`
}
