package accounting

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(id string, t domain.AccountType, debit, credit string) domain.TrialBalanceRow {
	return domain.TrialBalanceRow{AccountID: id, AccountCode: id, AccountName: id, AccountType: t, Debit: dec(debit), Credit: dec(credit)}
}

func TestNetAmount(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		debit       string
		credit      string
		want        string
	}{
		{domain.Asset, "100", "40", "60"},
		{domain.Expense, "30", "0", "30"},
		{domain.Liability, "10", "50", "40"},
		{domain.Equity, "0", "1000", "1000"},
		{domain.Revenue, "5", "200", "195"},
	}
	for _, tc := range tests {
		t.Run(string(tc.accountType), func(t *testing.T) {
			got, err := NetAmount(tc.accountType, dec(tc.debit), dec(tc.credit))
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tc.want)), "got %s", got)
		})
	}

	_, err := NetAmount("income", dec("1"), dec("0"))
	assert.Error(t, err)
}

func sampleRows() []domain.TrialBalanceRow {
	return []domain.TrialBalanceRow{
		row("1000", domain.Asset, "1500", "300"),
		row("2000", domain.Liability, "0", "200"),
		row("3000", domain.Equity, "0", "500"),
		row("4000", domain.Revenue, "0", "1000"),
		row("5000", domain.Expense, "500", "0"),
		{AccountID: "ghost", Debit: dec("7"), Credit: dec("7"), Unmapped: true},
	}
}

func TestProfitAndLoss(t *testing.T) {
	report, err := ProfitAndLoss(sampleRows())
	require.NoError(t, err)

	require.Len(t, report.Revenue, 1)
	require.Len(t, report.Expenses, 1)
	assert.True(t, report.Revenue[0].NetAmount.Equal(dec("1000")))
	assert.True(t, report.Expenses[0].NetAmount.Equal(dec("500")))
	assert.True(t, report.NetProfit.Equal(dec("500")))
}

func TestBalanceSheet_Balances(t *testing.T) {
	report, err := BalanceSheet(sampleRows())
	require.NoError(t, err)

	assert.True(t, report.TotalAssets.Equal(dec("1200")))
	assert.True(t, report.TotalLiabilities.Equal(dec("200")))
	assert.True(t, report.RetainedEarnings.Equal(dec("500")))
	assert.True(t, report.TotalEquity.Equal(dec("1000")))
	assert.True(t, report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}
