package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// groupedAmount matches thousands separators in groups of three, as in 1,250.75.
var groupedAmount = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseAmount converts a raw form value to a decimal. Blank or non-numeric
// input yields zero rather than an error, so a half-filled draft still sums.
// Commas are accepted only as thousands separators.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if groupedAmount.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
