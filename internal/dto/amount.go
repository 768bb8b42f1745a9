package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/erp_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// RawAmount is an amount exactly as the client typed it. It accepts a JSON
// string or number and is converted with Decimal, which never fails.
type RawAmount string

// UnmarshalJSON accepts "12.50", 12.5 and null.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	*a = RawAmount(data)
	return nil
}

// Decimal parses the amount; blank or non-numeric input is zero.
func (a RawAmount) Decimal() decimal.Decimal {
	return utils.ParseAmount(string(a))
}
