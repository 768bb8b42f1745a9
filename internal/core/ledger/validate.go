package ledger

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ValidateEntry checks the double-entry invariant of a draft: no line carries
// a negative amount, and the debit and credit columns sum to the same
// positive total. It has no side effects and may be called on every edit of
// a draft.
func ValidateEntry(entry domain.JournalEntry) error {
	debit, credit := entry.Totals()
	for i, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return &ValidationError{Kind: ErrNegativeAmount, TotalDebit: debit, TotalCredit: credit, Line: i}
		}
	}
	if !debit.Equal(credit) {
		return &ValidationError{Kind: ErrUnbalanced, TotalDebit: debit, TotalCredit: credit}
	}
	if !debit.IsPositive() {
		return &ValidationError{Kind: ErrZeroAmount, TotalDebit: debit, TotalCredit: credit}
	}
	return nil
}

// validateAccounts returns ErrUnknownAccount for the first line whose account
// is not in known.
func validateAccounts(entry domain.JournalEntry, known map[string]struct{}) error {
	for i, line := range entry.Lines {
		if _, ok := known[line.AccountID]; !ok {
			debit, credit := entry.Totals()
			return &ValidationError{
				Kind:        ErrUnknownAccount,
				TotalDebit:  debit,
				TotalCredit: credit,
				Line:        i,
				AccountID:   line.AccountID,
			}
		}
	}
	return nil
}
