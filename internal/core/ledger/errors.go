package ledger

import (
	"errors"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnbalanced is returned when total debits differ from total credits.
	ErrUnbalanced = errors.New("debits and credits must be equal")
	// ErrZeroAmount is returned when an entry moves no value.
	ErrZeroAmount = errors.New("entry total must be greater than zero")
	// ErrNegativeAmount is returned when a line carries a negative debit or credit.
	ErrNegativeAmount = errors.New("entry line amounts must not be negative")
	// ErrUnknownAccount is returned in strict mode for lines referencing an account outside the chart.
	ErrUnknownAccount = errors.New("entry line references an unknown account")
)

// ValidationError describes why a draft entry cannot be posted.
// It matches both its Kind and apperrors.ErrValidation under errors.Is.
type ValidationError struct {
	Kind        error
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// Line is set for ErrNegativeAmount and ErrUnknownAccount, zero-based.
	// AccountID is set for ErrUnknownAccount only.
	Line      int
	AccountID string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnknownAccount:
		return fmt.Sprintf("%s: line %d account %q", e.Kind, e.Line, e.AccountID)
	case ErrNegativeAmount:
		return fmt.Sprintf("%s: line %d", e.Kind, e.Line)
	default:
		return fmt.Sprintf("%s: debits %s, credits %s", e.Kind, e.TotalDebit.String(), e.TotalCredit.String())
	}
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, apperrors.ErrValidation}
}

// KindName returns a stable identifier for the error kind, suitable for API responses.
func (e *ValidationError) KindName() string {
	switch e.Kind {
	case ErrUnbalanced:
		return "Unbalanced"
	case ErrZeroAmount:
		return "ZeroAmount"
	case ErrNegativeAmount:
		return "NegativeAmount"
	case ErrUnknownAccount:
		return "UnknownAccount"
	}
	return "Invalid"
}
