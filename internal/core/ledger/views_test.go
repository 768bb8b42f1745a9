package ledger

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenLedger_PreservesOrder(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{EntryID: "e1", Date: day, Reference: "R1", Description: "first", Lines: []domain.EntryLine{
			line("a", "1", "0"), line("b", "0", "1"),
		}},
		{EntryID: "e2", Date: day.AddDate(0, 0, 1), Reference: "R2", Description: "second", Lines: []domain.EntryLine{
			line("c", "5", "0"), line("a", "0", "2"), line("b", "0", "3"),
		}},
	}

	lines := FlattenLedger(entries)
	require.Len(t, lines, 5)

	type key struct {
		entry string
		no    int
		acc   string
	}
	got := make([]key, 0, len(lines))
	for _, l := range lines {
		got = append(got, key{l.EntryID, l.LineNo, l.AccountID})
	}
	assert.Equal(t, []key{
		{"e1", 0, "a"}, {"e1", 1, "b"},
		{"e2", 0, "c"}, {"e2", 1, "a"}, {"e2", 2, "b"},
	}, got)

	assert.Equal(t, "R2", lines[3].Reference)
	assert.Equal(t, "second", lines[3].Description)
	assert.Equal(t, day.AddDate(0, 0, 1), lines[3].Date)
}

func TestFlattenLedger_Empty(t *testing.T) {
	assert.Empty(t, FlattenLedger(nil))
}

func TestLedgerForAccount(t *testing.T) {
	lines := FlattenLedger([]domain.JournalEntry{
		{EntryID: "e1", Lines: []domain.EntryLine{line("a", "1", "0"), line("b", "0", "1")}},
		{EntryID: "e2", Lines: []domain.EntryLine{line("b", "4", "0"), line("a", "0", "4")}},
	})

	got := LedgerForAccount(lines, "a")
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].EntryID)
	assert.Equal(t, "e2", got[1].EntryID)
	assert.Empty(t, LedgerForAccount(lines, "missing"))
}

func TestTrialBalance_ListsFullChartInCodeOrder(t *testing.T) {
	rows := TrialBalance(testChart(), nil)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1000", "1100", "4000"}, []string{rows[0].AccountCode, rows[1].AccountCode, rows[2].AccountCode})
	for _, row := range rows {
		assert.True(t, row.Debit.IsZero())
		assert.True(t, row.Credit.IsZero())
		assert.True(t, row.Balance.IsZero())
		assert.False(t, row.Unmapped)
	}
}

func TestTrialBalance_SumsAndBalances(t *testing.T) {
	entries := []domain.JournalEntry{
		{Lines: []domain.EntryLine{line("acc-cash", "100", "0"), line("acc-sales", "0", "100")}},
		{Lines: []domain.EntryLine{line("acc-bank", "40", "0"), line("acc-cash", "0", "40")}},
	}

	rows := TrialBalance(testChart(), entries)
	require.Len(t, rows, 3)

	cash := rows[0]
	assert.Equal(t, "acc-cash", cash.AccountID)
	assert.True(t, cash.Debit.Equal(d("100")))
	assert.True(t, cash.Credit.Equal(d("40")))
	assert.True(t, cash.Balance.Equal(d("60")))

	sales := rows[2]
	assert.True(t, sales.Balance.Equal(d("-100")))

	debit, credit := TrialBalanceTotals(rows)
	assert.True(t, debit.Equal(credit))
	assert.True(t, debit.Equal(d("140")))
}

func TestTrialBalance_UnmappedAccountsTrail(t *testing.T) {
	entries := []domain.JournalEntry{
		{Lines: []domain.EntryLine{line("zeta", "10", "0"), line("acc-cash", "0", "10")}},
		{Lines: []domain.EntryLine{line("alpha", "5", "0"), line("zeta", "0", "5")}},
	}

	rows := TrialBalance(testChart(), entries)
	require.Len(t, rows, 5)

	assert.Equal(t, "zeta", rows[3].AccountID)
	assert.True(t, rows[3].Unmapped)
	assert.True(t, rows[3].Balance.Equal(d("5")))
	assert.Equal(t, "alpha", rows[4].AccountID)
	assert.True(t, rows[4].Unmapped)

	debit, credit := TrialBalanceTotals(rows)
	assert.True(t, debit.Equal(credit))
}

func TestFilterEntries_MatchesDescriptionOrReferenceCaseInsensitive(t *testing.T) {
	entries := []domain.JournalEntry{
		{EntryID: "1", Description: "Sale Transaction: 88", Reference: "POS-88"},
		{EntryID: "2", Description: "Rent", Reference: "MANUAL"},
		{EntryID: "3", Description: "pos refund", Reference: "R-3"},
		{EntryID: "4", Description: "Payroll", Reference: "PAY"},
		{EntryID: "5", Description: "Deposit", Reference: "apos-5"},
	}

	got := FilterEntries(entries, "POS")

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.EntryID)
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids)
}

func TestFilterEntries_BlankFilterReturnsAll(t *testing.T) {
	entries := []domain.JournalEntry{{EntryID: "1"}, {EntryID: "2"}}
	assert.Equal(t, entries, FilterEntries(entries, "   "))
}

func TestFilterAccounts(t *testing.T) {
	chart := testChart()

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"acc-cash", "acc-sales", "acc-bank"}},
		{"cash", []string{"acc-cash"}},
		{"ASSET", []string{"acc-cash", "acc-bank"}},
		{"40", []string{"acc-sales"}},
		{"nothing", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.filter, func(t *testing.T) {
			got := FilterAccounts(chart, tc.filter)
			ids := make([]string, 0, len(got))
			for _, acc := range got {
				ids = append(ids, acc.AccountID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}
