package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DraftLineRequest is one line of a draft entry as entered on the form.
type DraftLineRequest struct {
	AccountID string    `json:"accountID" binding:"required"`
	Debit     RawAmount `json:"debit" swaggertype:"string"`
	Credit    RawAmount `json:"credit" swaggertype:"string"`
	Memo      string    `json:"memo"`
}

// DraftEntryRequest is a journal entry as entered on the form. Amounts are
// raw strings; blank header fields are defaulted when the entry is posted.
type DraftEntryRequest struct {
	EntryID     string             `json:"entryID"`
	Date        string             `json:"date"` // YYYY-MM-DD
	Reference   string             `json:"reference"`
	Description string             `json:"description"`
	Lines       []DraftLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDraft converts the request into a draft entry. Non-numeric amounts become
// zero; negative amounts and malformed dates are rejected.
func (r DraftEntryRequest) ToDraft() (domain.JournalEntry, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry := domain.JournalEntry{
		EntryID:     strings.TrimSpace(r.EntryID),
		Date:        date,
		Reference:   strings.TrimSpace(r.Reference),
		Description: strings.TrimSpace(r.Description),
		Lines:       make([]domain.EntryLine, len(r.Lines)),
	}
	for i, l := range r.Lines {
		debit, credit := l.Debit.Decimal(), l.Credit.Decimal()
		if debit.IsNegative() || credit.IsNegative() {
			return domain.JournalEntry{}, fmt.Errorf("%w: line %d: amounts must not be negative", apperrors.ErrValidation, i)
		}
		entry.Lines[i] = domain.EntryLine{
			AccountID: strings.TrimSpace(l.AccountID),
			Debit:     debit,
			Credit:    credit,
			Memo:      l.Memo,
		}
	}
	return entry, nil
}

// ValidateEntryResponse is the live feedback for a draft.
type ValidateEntryResponse struct {
	Valid       bool            `json:"valid"`
	Kind        string          `json:"kind,omitempty"`
	Error       string          `json:"error,omitempty"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// EntryLineResponse defines the data returned for an entry line.
type EntryLineResponse struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo,omitempty"`
}

// JournalEntryResponse defines the data returned for a posted entry.
type JournalEntryResponse struct {
	EntryID     string              `json:"entryID"`
	Date        string              `json:"date"`
	Reference   string              `json:"reference"`
	Description string              `json:"description"`
	ReversalOf  string              `json:"reversalOf,omitempty"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	PostedAt    time.Time           `json:"postedAt"`
	PostedBy    string              `json:"postedBy"`
	Lines       []EntryLineResponse `json:"lines"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Query     string `form:"q"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ListJournalEntriesResponse is one page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	debit, credit := e.Totals()
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit, Memo: l.Memo}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date.Format(DateLayout),
		Reference:   e.Reference,
		Description: e.Description,
		ReversalOf:  e.ReversalOf,
		TotalDebit:  debit,
		TotalCredit: credit,
		PostedAt:    e.PostedAt,
		PostedBy:    e.PostedBy,
		Lines:       lines,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
