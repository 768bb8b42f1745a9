package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelJournalEntry_NumbersLinesAndNullsReversal(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID:  "je-1",
		TenantID: "t1",
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Lines: []domain.EntryLine{
			{AccountID: "a", Debit: decimal.NewFromInt(10), Credit: decimal.Zero},
			{AccountID: "b", Debit: decimal.Zero, Credit: decimal.NewFromInt(10), Memo: "m"},
		},
	}

	header, lines := ToModelJournalEntry(entry)

	assert.False(t, header.ReversalOf.Valid)
	require.Len(t, lines, 2)
	assert.Equal(t, 0, lines[0].LineNo)
	assert.Equal(t, 1, lines[1].LineNo)
	assert.Equal(t, "je-1", lines[1].EntryID)

	entry.ReversalOf = "je-0"
	header, _ = ToModelJournalEntry(entry)
	assert.True(t, header.ReversalOf.Valid)

	back := ToDomainJournalEntry(header, lines)
	assert.Equal(t, "je-0", back.ReversalOf)
	assert.Equal(t, "m", back.Lines[1].Memo)
	assert.Equal(t, entry.Date, back.Date)
}
