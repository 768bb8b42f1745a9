package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or RFC3339. A blank value returns the zero time.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	return t.UTC(), nil
}

func requireDate(field, raw string) (time.Time, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return t, nil
}
