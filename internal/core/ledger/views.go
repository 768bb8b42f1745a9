package ledger

import (
	"sort"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FlattenLedger produces one LedgerLine per entry line: entries in the order
// given, lines in their original order.
func FlattenLedger(entries []domain.JournalEntry) []domain.LedgerLine {
	n := 0
	for _, entry := range entries {
		n += len(entry.Lines)
	}
	out := make([]domain.LedgerLine, 0, n)
	for _, entry := range entries {
		for i, line := range entry.Lines {
			out = append(out, domain.LedgerLine{
				EntryID:     entry.EntryID,
				LineNo:      i,
				Date:        entry.Date,
				Reference:   entry.Reference,
				Description: entry.Description,
				AccountID:   line.AccountID,
				Debit:       line.Debit,
				Credit:      line.Credit,
				Memo:        line.Memo,
			})
		}
	}
	return out
}

// LedgerForAccount keeps only the ledger lines posted to accountID.
func LedgerForAccount(lines []domain.LedgerLine, accountID string) []domain.LedgerLine {
	out := make([]domain.LedgerLine, 0)
	for _, line := range lines {
		if line.AccountID == accountID {
			out = append(out, line)
		}
	}
	return out
}

// TrialBalance sums debit and credit per account across all ledger lines.
// Every account in the chart gets a row, including accounts with no activity,
// ordered by account code. Activity against ids missing from the chart is
// reported in trailing rows marked Unmapped, in first-seen order.
func TrialBalance(accounts []domain.Account, entries []domain.JournalEntry) []domain.TrialBalanceRow {
	chart := make([]domain.Account, len(accounts))
	copy(chart, accounts)
	sort.SliceStable(chart, func(i, j int) bool {
		return chart[i].Code < chart[j].Code
	})

	rows := make([]domain.TrialBalanceRow, 0, len(chart))
	index := make(map[string]int, len(chart))
	for _, acc := range chart {
		if _, dup := index[acc.AccountID]; dup {
			continue
		}
		index[acc.AccountID] = len(rows)
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.Type,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		})
	}

	for _, line := range FlattenLedger(entries) {
		i, ok := index[line.AccountID]
		if !ok {
			i = len(rows)
			index[line.AccountID] = i
			rows = append(rows, domain.TrialBalanceRow{
				AccountID: line.AccountID,
				Debit:     decimal.Zero,
				Credit:    decimal.Zero,
				Unmapped:  true,
			})
		}
		rows[i].Debit = rows[i].Debit.Add(line.Debit)
		rows[i].Credit = rows[i].Credit.Add(line.Credit)
	}

	for i := range rows {
		rows[i].Balance = rows[i].Debit.Sub(rows[i].Credit)
	}
	return rows
}

// TrialBalanceTotals sums the debit and credit columns of a trial balance.
func TrialBalanceTotals(rows []domain.TrialBalanceRow) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, row := range rows {
		debit = debit.Add(row.Debit)
		credit = credit.Add(row.Credit)
	}
	return debit, credit
}
